package stories

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrStoryNotFound = errors.New("story not found")

// Status is the lifecycle state of a story, polled by clients while
// the hosted session backend runs it.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// Story is the metadata kept for a multiplayer session. The session
// itself lives in the hosted backend; this is only what the routes
// need to list and poll.
type Story struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Repository stores story metadata.
type Repository interface {
	Close(ctx context.Context) error
	CreateStory(ctx context.Context, title string) (*Story, error)
	GetStory(ctx context.Context, id string) (*Story, error)
	ListStories(ctx context.Context) ([]*Story, error)
	SetStoryStatus(ctx context.Context, id string, status Status) error
}

func (s *Story) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !s.Status.Valid() {
		return fmt.Errorf("unknown status %q", s.Status)
	}
	return nil
}
