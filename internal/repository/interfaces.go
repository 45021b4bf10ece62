package repository

import (
	"context"

	"cms-admin/internal/domain"
)

// ArticleRepository defines slug-addressed access to article records.
// GetBySlug returns (nil, nil) when no record exists; Delete is a no-op for
// unknown slugs.
type ArticleRepository interface {
	Insert(ctx context.Context, article *domain.Article) error
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, slug string) error
}

// WorkRepository defines slug-addressed access to work records.
type WorkRepository interface {
	Insert(ctx context.Context, work *domain.Work) error
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Work, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Work, error)
	Update(ctx context.Context, work *domain.Work) error
	Delete(ctx context.Context, slug string) error
	// Rename atomically moves a record to a new slug. It fails with a
	// conflict error when newSlug is taken and a not-found error when
	// oldSlug does not exist.
	Rename(ctx context.Context, oldSlug, newSlug string) error
	// DistinctTags returns the sorted set of tag values across all works.
	DistinctTags(ctx context.Context) ([]string, error)
}
