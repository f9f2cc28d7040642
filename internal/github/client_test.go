package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/someone/repos", r.URL.Path)
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.Equal(t, "token tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 1, "name": "repo-one"},
			{"id": 2, "name": "repo-two"},
		})
	}))
	defer srv.Close()

	c := NewClient("someone", "tok")
	c.baseURL = srv.URL

	repos, err := c.ListRepos(context.Background())
	require.NoError(t, err)
	assert.Len(t, repos, 2)
	assert.Contains(t, string(repos[0]), "repo-one")
}

func TestListReposNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient("someone", "")
	c.baseURL = srv.URL

	repos, err := c.ListRepos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestListReposUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"rate limited"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("someone", "")
	c.baseURL = srv.URL

	_, err := c.ListRepos(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
