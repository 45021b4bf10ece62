package service

import (
	"context"

	"cms-admin/internal/domain"
)

// FileUpload is an uploaded file buffered by the transport layer.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ArticleServiceInterface defines the article record lifecycle.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// Create persists a new article; duplicate slugs fail with a conflict.
	Create(ctx context.Context, in *domain.ArticleInput) (*domain.Article, error)
	// List returns articles, optionally filtered by status, published first.
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Article, error)
	// GetBySlug returns the article or a not-found error.
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	// Update applies a partial update; the slug itself never changes.
	Update(ctx context.Context, slug string, patch *domain.ArticlePatch) (*domain.Article, error)
	// Delete removes the article; unknown slugs succeed.
	Delete(ctx context.Context, slug string) error
	// UploadCover stores a cover image and binds its URL to the record.
	UploadCover(ctx context.Context, slug string, file FileUpload) (*domain.Article, error)
}

// WorkServiceInterface defines the work record lifecycle.
// Used for dependency injection and mocking in tests.
type WorkServiceInterface interface {
	// Create persists a new work; duplicate slugs fail with a conflict.
	Create(ctx context.Context, in *domain.WorkInput) (*domain.Work, error)
	// List returns works, optionally filtered by status, published first.
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Work, error)
	// GetBySlug returns the work or a not-found error.
	GetBySlug(ctx context.Context, slug string) (*domain.Work, error)
	// Update applies a partial update; the slug itself never changes.
	Update(ctx context.Context, slug string, patch *domain.WorkPatch) (*domain.Work, error)
	// Delete removes the work and cascades into its stored objects.
	Delete(ctx context.Context, slug string) error
	// UploadCover stores a cover image and binds its URL to the record.
	UploadCover(ctx context.Context, slug string, file FileUpload) (*domain.Work, error)
	// SaveContentBlocks uploads pending files, resolves block slots into
	// URLs, and persists the block list.
	SaveContentBlocks(ctx context.Context, slug string, blocks []domain.BlockInput, files map[string]FileUpload) (*domain.Work, error)
	// Rename moves the work to a new slug.
	Rename(ctx context.Context, oldSlug, newSlug string) (*domain.Work, error)
	// ListTags returns the distinct tag values across all works.
	ListTags(ctx context.Context) ([]string, error)
}
