package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahul4112/portfolio-backend/internal/auth"
	"github.com/rahul4112/portfolio-backend/internal/middleware"
	"github.com/rahul4112/portfolio-backend/internal/store"
)

// setupProjectRouter wires the handlers behind RequireAuth the way
// cmd/server does and returns a valid session cookie.
func setupProjectRouter(t *testing.T) (*chi.Mux, *http.Cookie) {
	dir := t.TempDir()
	images, err := store.NewLocalStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	repo, err := NewFileRepository(filepath.Join(dir, "projects.json"), images)
	require.NoError(t, err)
	h := NewHandler(repo)

	sessions := auth.NewMemoryStore()
	token, err := sessions.Create(context.Background(), "admin")
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/api/projects", h.List)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions))
		r.Get("/api/admin/categories", h.ListCategories)
		r.Post("/api/admin/projects", h.Create)
		r.Delete("/api/admin/projects/{id}", h.Delete)
	})

	return r, &http.Cookie{Name: auth.SessionCookie, Value: token}
}

func TestCreateProjectScenario(t *testing.T) {
	r, cookie := setupProjectRouter(t)

	req := multipartRequest(t, demoFields(), nil, "")
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var body struct {
		Success bool    `json:"success"`
		Project *Record `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Project)
	assert.Positive(t, body.Project.ID)
	assert.Nil(t, body.Project.ImageURL)
	assert.Equal(t, "Python", body.Project.Category)
}

func TestCreateProjectValidationError(t *testing.T) {
	r, cookie := setupProjectRouter(t)

	fields := demoFields()
	fields["title"] = ""
	req := multipartRequest(t, fields, nil, "")
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Nothing was appended.
	listReq := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, listReq)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"projects":[]}`, rr.Body.String())
}

func TestProjectRoutesRequireAuth(t *testing.T) {
	r, _ := setupProjectRouter(t)

	req := multipartRequest(t, demoFields(), nil, "")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/projects/1", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/categories", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Listing is public.
	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteProjectEndpoint(t *testing.T) {
	r, cookie := setupProjectRouter(t)

	req := multipartRequest(t, demoFields(), nil, "")
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var created struct {
		Project Record `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	del := httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/admin/projects/%d", created.Project.ID), nil)
	del.AddCookie(cookie)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, del)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())

	// Deleting again reports not found.
	del = httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/admin/projects/%d", created.Project.ID), nil)
	del.AddCookie(cookie)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, del)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListCategories(t *testing.T) {
	r, cookie := setupProjectRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/categories", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, Categories, body.Categories)
	assert.Contains(t, body.Categories, "Python")
}
