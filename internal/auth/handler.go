package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// LoginRequest is the JSON body for POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler holds the admin auth HTTP handlers.
type Handler struct {
	verifier *Verifier
	sessions Store

	// failureDelay throttles credential guessing. Tests shrink it.
	failureDelay time.Duration
}

func NewHandler(verifier *Verifier, sessions Store) *Handler {
	return &Handler{
		verifier:     verifier,
		sessions:     sessions,
		failureDelay: time.Second,
	}
}

// Login validates credentials and, on success, creates a session and sets the
// HTTP-only cookie carrying its token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, `{"error":"username and password are required"}`, http.StatusBadRequest)
		return
	}

	if !h.verifier.Verify(req.Username, req.Password) {
		// Blunt brute-force guessing before answering.
		time.Sleep(h.failureDelay)
		http.Error(w, `{"error":"invalid username or password"}`, http.StatusUnauthorized)
		return
	}

	token, err := h.sessions.Create(r.Context(), req.Username)
	if err != nil {
		log.Printf("session create error: %v", err)
		http.Error(w, `{"error":"session creation failed"}`, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionTTL / time.Second),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Logout destroys the current session, if any, and clears the cookie. It
// always succeeds.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			log.Printf("session delete error: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Verify reports whether the caller's cookie still identifies a live session.
// It does not refresh the session's expiry.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || !h.sessions.Has(r.Context(), cookie.Value) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]bool{"authenticated": false})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"authenticated": true})
}

// SetFailureDelay overrides the bad-credentials delay, mainly for tests.
func (h *Handler) SetFailureDelay(d time.Duration) { h.failureDelay = d }
