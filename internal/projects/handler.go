package projects

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rahul4112/portfolio-backend/internal/middleware"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Handler holds the project HTTP handlers.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List returns every curated project. Reads are public; the portfolio page
// calls this without a session.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.repo.List(r.Context())
	if err != nil {
		log.Printf("list projects error: %v", err)
		http.Error(w, `{"error":"failed to fetch projects"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": records})
}

// Create adds a project from a multipart form submission.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := ParseForm(r)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Reason})
			return
		}
		http.Error(w, `{"error":"invalid request"}`, http.StatusBadRequest)
		return
	}

	rec, err := h.repo.Create(r.Context(), *in)
	if err != nil {
		log.Printf("create project error: %v", err)
		http.Error(w, `{"error":"failed to add project"}`, http.StatusInternalServerError)
		return
	}

	log.Printf("[admin] %s added project %q", middleware.Username(r.Context()), rec.Title)
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "project": rec})
}

// Delete removes a project and its stored image.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid project id"})
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "project not found"})
			return
		}
		log.Printf("delete project error: %v", err)
		http.Error(w, `{"error":"failed to delete project"}`, http.StatusInternalServerError)
		return
	}

	log.Printf("[admin] %s removed project %d", middleware.Username(r.Context()), id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListCategories returns the fixed category enumeration the admin UI offers.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": Categories})
}
