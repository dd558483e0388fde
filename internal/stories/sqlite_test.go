package stories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func testRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	ctx := context.Background()
	repo, err := NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "stories.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close(ctx) })
	return repo
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	created, err := repo.CreateStory(ctx, "The Serpent Key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "status", created.Status, StatusPending)
	if created.Id == "" {
		t.Fatal("expected a generated story id")
	}

	got, err := repo.GetStory(ctx, created.Id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "title", got.Title, "The Serpent Key")

	err = repo.SetStoryStatus(ctx, created.Id, StatusActive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = repo.GetStory(ctx, created.Id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "status", got.Status, StatusActive)
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Errorf("updated_at %v precedes created_at %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestSQLiteRepository_List(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	for _, title := range []string{"First", "Second"} {
		if _, err := repo.CreateStory(ctx, title); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := repo.ListStories(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "story count", len(all), 2)
}

func TestSQLiteRepository_NotFound(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	_, err := repo.GetStory(ctx, "missing")
	testutil.AssertEqual(t, "get missing", errors.Is(err, ErrStoryNotFound), true)

	err = repo.SetStoryStatus(ctx, "missing", StatusCompleted)
	testutil.AssertEqual(t, "update missing", errors.Is(err, ErrStoryNotFound), true)
}

func TestSQLiteRepository_InvalidStatus(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	created, err := repo.CreateStory(ctx, "The Serpent Key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = repo.SetStoryStatus(ctx, created.Id, Status("bogus"))
	testutil.AssertErrorContains(t, err, "unknown status")
}
