// Package mocks provides testify-based test doubles for the repository,
// storage, auth, and service interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"cms-admin/internal/domain"
)

// ArticleRepository is a mock of repository.ArticleRepository.
type ArticleRepository struct {
	mock.Mock
}

// NewArticleRepository creates the mock and registers expectation checks
// with the test cleanup.
func NewArticleRepository(t *testing.T) *ArticleRepository {
	m := &ArticleRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ArticleRepository) Insert(ctx context.Context, article *domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *ArticleRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Article, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *ArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *ArticleRepository) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

// WorkRepository is a mock of repository.WorkRepository.
type WorkRepository struct {
	mock.Mock
}

// NewWorkRepository creates the mock and registers expectation checks with
// the test cleanup.
func NewWorkRepository(t *testing.T) *WorkRepository {
	m := &WorkRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WorkRepository) Insert(ctx context.Context, work *domain.Work) error {
	args := m.Called(ctx, work)
	return args.Error(0)
}

func (m *WorkRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Work, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Work), args.Error(1)
}

func (m *WorkRepository) GetBySlug(ctx context.Context, slug string) (*domain.Work, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *WorkRepository) Update(ctx context.Context, work *domain.Work) error {
	args := m.Called(ctx, work)
	return args.Error(0)
}

func (m *WorkRepository) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *WorkRepository) Rename(ctx context.Context, oldSlug, newSlug string) error {
	args := m.Called(ctx, oldSlug, newSlug)
	return args.Error(0)
}

func (m *WorkRepository) DistinctTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
