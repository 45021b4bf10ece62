package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"cms-admin/internal/domain"
	"cms-admin/internal/service"
)

// ArticleService is a mock of service.ArticleServiceInterface.
type ArticleService struct {
	mock.Mock
}

// NewArticleService creates the mock and registers expectation checks with
// the test cleanup.
func NewArticleService(t *testing.T) *ArticleService {
	m := &ArticleService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ArticleService) Create(ctx context.Context, in *domain.ArticleInput) (*domain.Article, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *ArticleService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Article, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *ArticleService) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *ArticleService) Update(ctx context.Context, slug string, patch *domain.ArticlePatch) (*domain.Article, error) {
	args := m.Called(ctx, slug, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *ArticleService) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *ArticleService) UploadCover(ctx context.Context, slug string, file service.FileUpload) (*domain.Article, error) {
	args := m.Called(ctx, slug, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

// WorkService is a mock of service.WorkServiceInterface.
type WorkService struct {
	mock.Mock
}

// NewWorkService creates the mock and registers expectation checks with the
// test cleanup.
func NewWorkService(t *testing.T) *WorkService {
	m := &WorkService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WorkService) Create(ctx context.Context, in *domain.WorkInput) (*domain.Work, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *WorkService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Work, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Work), args.Error(1)
}

func (m *WorkService) GetBySlug(ctx context.Context, slug string) (*domain.Work, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *WorkService) Update(ctx context.Context, slug string, patch *domain.WorkPatch) (*domain.Work, error) {
	args := m.Called(ctx, slug, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *WorkService) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *WorkService) UploadCover(ctx context.Context, slug string, file service.FileUpload) (*domain.Work, error) {
	args := m.Called(ctx, slug, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *WorkService) SaveContentBlocks(ctx context.Context, slug string, blocks []domain.BlockInput, files map[string]service.FileUpload) (*domain.Work, error) {
	args := m.Called(ctx, slug, blocks, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *WorkService) Rename(ctx context.Context, oldSlug, newSlug string) (*domain.Work, error) {
	args := m.Called(ctx, oldSlug, newSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *WorkService) ListTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
