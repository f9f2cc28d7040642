package projects

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahul4112/portfolio-backend/internal/store"
)

// PostgresRepository is the transactional alternative to the JSON file for
// deployments that outgrow it. It implements the same Repository contract.
type PostgresRepository struct {
	pool   *pgxpool.Pool
	images store.FileStore
}

func NewPostgresRepository(pool *pgxpool.Pool, images store.FileStore) *PostgresRepository {
	return &PostgresRepository{pool: pool, images: images}
}

// Migrate creates the projects table if it doesn't exist.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			id             BIGINT PRIMARY KEY,
			title          TEXT NOT NULL,
			description    TEXT NOT NULL,
			live_link      TEXT,
			source_link    TEXT NOT NULL,
			image_url      TEXT,
			category       TEXT NOT NULL,
			github_repo_id BIGINT,
			created_at     TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, live_link, source_link, image_url,
		       category, github_repo_id, created_at
		FROM projects ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Description, &rec.LiveLink,
			&rec.SourceLink, &rec.ImageURL, &rec.Category, &rec.GitHubRepoID,
			&rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, in Input) (*Record, error) {
	now := time.Now()
	rec := Record{
		ID:           now.UnixMilli(),
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
		key := fmt.Sprintf("%s-%d-%s%s",
			slugify(in.Title), now.UnixMilli(), uuid.NewString()[:8], extFor(in.Image.ContentType))
		if err := r.images.Upload(ctx, key, in.Image.Data, in.Image.ContentType); err != nil {
			return nil, fmt.Errorf("store project image: %w", err)
		}
		url := r.images.URL(key)
		rec.ImageURL = &url
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO projects (id, title, description, live_link, source_link,
		                      image_url, category, github_repo_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.Title, rec.Description, rec.LiveLink, rec.SourceLink,
		rec.ImageURL, rec.Category, rec.GitHubRepoID, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &rec, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	var imageURL *string
	err := r.pool.QueryRow(ctx,
		`DELETE FROM projects WHERE id = $1 RETURNING image_url`, id,
	).Scan(&imageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	if imageURL != nil {
		if err := r.images.Remove(ctx, path.Base(*imageURL)); err != nil {
			log.Printf("delete image for project %d: %v", id, err)
		}
	}
	return nil
}
