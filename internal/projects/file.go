package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rahul4112/portfolio-backend/internal/store"
)

// FileRepository persists the project list as one JSON array, rewritten in
// full on every mutation. The mutex serializes each read-modify-write cycle,
// so concurrent creates or deletes cannot lose each other's updates.
type FileRepository struct {
	path   string
	images store.FileStore

	mu  sync.Mutex // held across every load+save cycle
	now func() time.Time
}

func NewFileRepository(path string, images store.FileStore) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileRepository{
		path:   path,
		images: images,
		now:    time.Now,
	}, nil
}

func (r *FileRepository) List(_ context.Context) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileRepository) Create(ctx context.Context, in Input) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	now := r.now()
	id := now.UnixMilli()
	// Ids are timestamp-based but must stay unique and monotonic even when
	// two creates land in the same millisecond.
	for _, rec := range records {
		if rec.ID >= id {
			id = rec.ID + 1
		}
	}

	rec := Record{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		SourceLink:   in.SourceLink,
		Category:     in.Category,
		GitHubRepoID: in.GitHubRepoID,
		CreatedAt:    now.UTC(),
	}
	if in.LiveLink != "" {
		rec.LiveLink = &in.LiveLink
	}

	if in.Image != nil {
		key := imageKey(in.Title, now, in.Image.ContentType)
		if err := r.images.Upload(ctx, key, in.Image.Data, in.Image.ContentType); err != nil {
			return nil, fmt.Errorf("store project image: %w", err)
		}
		url := r.images.URL(key)
		rec.ImageURL = &url
	}

	records = append(records, rec)
	if err := r.save(records); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	idx := -1
	for i, rec := range records {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	// Image removal failure must not block record deletion.
	if rec := records[idx]; rec.ImageURL != nil {
		if err := r.images.Remove(ctx, path.Base(*rec.ImageURL)); err != nil {
			log.Printf("delete image for project %d: %v", id, err)
		}
	}

	records = append(records[:idx], records[idx+1:]...)
	return r.save(records)
}

// load reads the backing file. A missing file means no projects yet.
func (r *FileRepository) load() ([]Record, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read projects file: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode projects file: %w", err)
	}
	return records, nil
}

func (r *FileRepository) save(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode projects: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write projects file: %w", err)
	}
	return nil
}

// imageKey builds a collision-resistant filename from the title, the creation
// timestamp and a random suffix.
func imageKey(title string, now time.Time, contentType string) string {
	return fmt.Sprintf("%s-%d-%s%s",
		slugify(title), now.UnixMilli(), uuid.NewString()[:8], extFor(contentType))
}

func slugify(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(s) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func extFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
