package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-admin/internal/domain"
	"cms-admin/internal/repository"
)

func newTestArticle(slug string) *domain.Article {
	return &domain.Article{
		ID:      uuid.New().String(),
		Slug:    slug,
		Title:   domain.LocalizedText{EN: "Title " + slug},
		Content: domain.LocalizedText{EN: "Body " + slug},
		Status:  domain.StatusDraft,
	}
}

func TestPostgresArticleRepository_Insert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArticleRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("insert and read back", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		a := newTestArticle("hello-world")
		a.Description = domain.LocalizedText{EN: "A greeting", ID: "Sebuah salam"}
		a.Tags = domain.LocalizedTagList{EN: []string{"go", "cms"}}

		require.NoError(t, repo.Insert(ctx, a))
		assert.False(t, a.CreatedAt.IsZero())

		got, err := repo.GetBySlug(ctx, "hello-world")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "hello-world", got.Slug)
		assert.Equal(t, "A greeting", got.Description.EN)
		assert.Equal(t, "Sebuah salam", got.Description.ID)
		assert.Equal(t, []string{"go", "cms"}, got.Tags.EN)
		assert.Equal(t, domain.StatusDraft, got.Status)
		assert.Nil(t, got.PublishedAt)
	})

	t.Run("duplicate slug returns conflict", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		require.NoError(t, repo.Insert(ctx, newTestArticle("dup")))
		err := repo.Insert(ctx, newTestArticle("dup"))

		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))

		// Exactly one record survives.
		list, err := repo.List(ctx, domain.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestPostgresArticleRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArticleRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("orders by published_at desc with drafts last", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		older := newTestArticle("older-published")
		olderAt := time.Now().Add(-2 * time.Hour).UTC()
		older.Status = domain.StatusPublished
		older.PublishedAt = &olderAt
		require.NoError(t, repo.Insert(ctx, older))

		newer := newTestArticle("newer-published")
		newerAt := time.Now().Add(-1 * time.Hour).UTC()
		newer.Status = domain.StatusPublished
		newer.PublishedAt = &newerAt
		require.NoError(t, repo.Insert(ctx, newer))

		draft := newTestArticle("still-draft")
		require.NoError(t, repo.Insert(ctx, draft))

		list, err := repo.List(ctx, domain.ListFilter{})
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "newer-published", list[0].Slug)
		assert.Equal(t, "older-published", list[1].Slug)
		assert.Equal(t, "still-draft", list[2].Slug)
	})

	t.Run("status filter returns only matching records", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		published := newTestArticle("pub")
		at := time.Now().UTC()
		published.Status = domain.StatusPublished
		published.PublishedAt = &at
		require.NoError(t, repo.Insert(ctx, published))
		require.NoError(t, repo.Insert(ctx, newTestArticle("draft")))

		list, err := repo.List(ctx, domain.ListFilter{Status: domain.StatusPublished})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "pub", list[0].Slug)
	})
}

func TestPostgresArticleRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArticleRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("rewrites mutable fields", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		a := newTestArticle("to-update")
		require.NoError(t, repo.Insert(ctx, a))

		a.Title = domain.LocalizedText{EN: "Updated"}
		at := time.Now().UTC()
		a.Status = domain.StatusPublished
		a.PublishedAt = &at
		require.NoError(t, repo.Update(ctx, a))

		got, err := repo.GetBySlug(ctx, "to-update")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Updated", got.Title.EN)
		assert.Equal(t, domain.StatusPublished, got.Status)
		require.NotNil(t, got.PublishedAt)
	})

	t.Run("unknown slug returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		err := repo.Update(ctx, newTestArticle("ghost"))
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestPostgresArticleRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresArticleRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("delete removes record", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		require.NoError(t, repo.Insert(ctx, newTestArticle("doomed")))
		require.NoError(t, repo.Delete(ctx, "doomed"))

		got, err := repo.GetBySlug(ctx, "doomed")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete of unknown slug succeeds", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")

		assert.NoError(t, repo.Delete(ctx, "never-existed"))
	})
}
