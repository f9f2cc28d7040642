package github

import (
	"encoding/json"
	"log"
	"net/http"
)

// Handler proxies the repository listing for the admin panel.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) ListRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := h.client.ListRepos(r.Context())
	if err != nil {
		log.Printf("github repos error: %v", err)
		http.Error(w, `{"error":"failed to fetch repositories"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"repos": repos})
}
