package projects

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Categories is the fixed set a project may belong to. The admin UI offers
// exactly this list and validation rejects anything else.
var Categories = []string{
	"AI Agents",
	"Generative AI",
	"Machine Learning",
	"Python",
	"Gen AI",
	"Full Stack",
	"Deep Learning",
	"NLP",
}

// ErrNotFound is returned when a project id is not in the repository.
var ErrNotFound = errors.New("project not found")

// ValidationError marks a rejected input. Handlers map it to a 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Record is a single admin-curated portfolio project, distinct from the
// statically bundled project list rendered by the front end.
type Record struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	LiveLink     *string   `json:"live_link"`
	SourceLink   string    `json:"source_link"`
	ImageURL     *string   `json:"image_url"`
	Category     string    `json:"category"`
	GitHubRepoID *int64    `json:"github_repo_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Input is a validated add-project submission.
type Input struct {
	Title        string
	Description  string
	LiveLink     string
	SourceLink   string
	Category     string
	GitHubRepoID *int64
	Image        *ImageUpload
}

// ImageUpload carries the raw bytes of an optional project image.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Repository is the persistence boundary for project records. The file
// implementation is canonical; Postgres backs larger deployments.
type Repository interface {
	// List returns all records in insertion order. An empty store is an
	// empty slice, not an error.
	List(ctx context.Context) ([]Record, error)
	// Create validates nothing; callers pass an already-validated Input.
	// It persists the optional image, assigns a unique id and appends.
	Create(ctx context.Context, in Input) (*Record, error)
	// Delete removes the record with the given id and its stored image.
	// Returns ErrNotFound if the id is absent.
	Delete(ctx context.Context, id int64) error
}

func validCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
