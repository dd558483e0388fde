package stories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS stories (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateStory(ctx context.Context, title string) (*Story, error) {
	now := time.Now().UTC()
	story := &Story{
		Id:        uuid.NewString(),
		Title:     title,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := story.Validate(); err != nil {
		return nil, err
	}

	q := `
	INSERT INTO stories (id, title, status, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, story.Id, story.Title, story.Status, story.CreatedAt, story.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting story: %w", err)
	}

	return story, nil
}

func (r *SQLiteRepository) GetStory(ctx context.Context, id string) (*Story, error) {
	q := `
	SELECT id, title, status, created_at, updated_at FROM stories WHERE id = ?;
	`
	story := &Story{}
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&story.Id, &story.Title, &story.Status, &story.CreatedAt, &story.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", ErrStoryNotFound, id)
		}
		return nil, fmt.Errorf("scanning story: %w", err)
	}

	return story, nil
}

func (r *SQLiteRepository) ListStories(ctx context.Context) ([]*Story, error) {
	q := `
	SELECT id, title, status, created_at, updated_at FROM stories ORDER BY created_at;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying stories: %w", err)
	}
	defer rows.Close()

	var out []*Story
	for rows.Next() {
		story := &Story{}
		err := rows.Scan(&story.Id, &story.Title, &story.Status, &story.CreatedAt, &story.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning story: %w", err)
		}
		out = append(out, story)
	}

	return out, rows.Err()
}

func (r *SQLiteRepository) SetStoryStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}

	q := `
	UPDATE stories SET status = ?, updated_at = ? WHERE id = ?;
	`
	res, err := r.db.ExecContext(ctx, q, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating story: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrStoryNotFound, id)
	}

	return nil
}
