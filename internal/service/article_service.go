package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cms-admin/internal/domain"
	"cms-admin/internal/logger"
	"cms-admin/internal/metrics"
	"cms-admin/internal/repository"
	"cms-admin/internal/storage"
	"cms-admin/internal/validator"
)

// MaxCoverSizeBytes caps cover image uploads.
const MaxCoverSizeBytes = 5 << 20

// allowedImageExt maps accepted upload content types to file extensions.
var allowedImageExt = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// ArticleService implements the article record lifecycle: slug-addressed
// CRUD with the publish-state transition rule.
type ArticleService struct {
	repo      repository.ArticleRepository
	store     storage.ObjectStore
	validator *validator.Validator
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repository.ArticleRepository, store storage.ObjectStore, v *validator.Validator) *ArticleService {
	return &ArticleService{repo: repo, store: store, validator: v}
}

// Create validates and persists a new article. Status defaults to Draft; a
// record created directly as Published gets publishedAt stamped at creation.
func (s *ArticleService) Create(ctx context.Context, in *domain.ArticleInput) (*domain.Article, error) {
	if err := validator.AsDomainError(s.validator.ValidateArticleInput(in)); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}

	article := &domain.Article{
		ID:          uuid.New().String(),
		Slug:        in.Slug,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Tags:        in.Tags.Normalize(),
		CoverURL:    in.CoverURL,
		Status:      status,
	}
	if status == domain.StatusPublished {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}

	if err := s.repo.Insert(ctx, article); err != nil {
		metrics.ContentOperationsTotal.WithLabelValues("article", "create", "error").Inc()
		return nil, err
	}

	metrics.ContentOperationsTotal.WithLabelValues("article", "create", "success").Inc()
	logger.Info("Article created",
		slog.String("slug", article.Slug),
		slog.String("status", string(article.Status)))
	return article, nil
}

// List returns articles ordered published-first, newest-first.
func (s *ArticleService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Article, error) {
	if filter.Status != "" && !domain.IsValidStatus(filter.Status) {
		return nil, domain.ValidationError("unknown status %q", filter.Status)
	}
	return s.repo.List(ctx, filter)
}

// GetBySlug returns the article addressed by slug.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("article %q not found", slug))
	}
	return article, nil
}

// Update applies a partial update. Fields absent from the patch keep their
// current value; the slug is immutable and has no place in the patch.
//
// publishedAt is stamped exactly once, on the first Draft-to-Published
// transition. Later updates never clear or re-stamp it.
func (s *ArticleService) Update(ctx context.Context, slug string, patch *domain.ArticlePatch) (*domain.Article, error) {
	if err := validator.AsDomainError(s.validator.ValidateArticlePatch(patch)); err != nil {
		return nil, err
	}

	article, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		article.Title = *patch.Title
	}
	if patch.Description != nil {
		article.Description = *patch.Description
	}
	if patch.Content != nil {
		article.Content = *patch.Content
	}
	if patch.Tags != nil {
		article.Tags = patch.Tags.Normalize()
	}
	if patch.CoverURL != nil {
		article.CoverURL = *patch.CoverURL
	}
	if patch.Status != nil {
		toPublished := article.Status != domain.StatusPublished && *patch.Status == domain.StatusPublished
		if toPublished && article.PublishedAt == nil {
			now := time.Now().UTC()
			article.PublishedAt = &now
		}
		article.Status = *patch.Status
	}

	if err := s.repo.Update(ctx, article); err != nil {
		metrics.ContentOperationsTotal.WithLabelValues("article", "update", "error").Inc()
		return nil, err
	}

	metrics.ContentOperationsTotal.WithLabelValues("article", "update", "success").Inc()
	return article, nil
}

// Delete removes the article. Deleting an unknown slug succeeds.
func (s *ArticleService) Delete(ctx context.Context, slug string) error {
	if err := s.repo.Delete(ctx, slug); err != nil {
		metrics.ContentOperationsTotal.WithLabelValues("article", "delete", "error").Inc()
		return err
	}
	metrics.ContentOperationsTotal.WithLabelValues("article", "delete", "success").Inc()
	logger.Info("Article deleted", slog.String("slug", slug))
	return nil
}

// UploadCover stores a new cover image under the article's namespace, binds
// its URL to the record, and best-effort deletes the previous cover object.
func (s *ArticleService) UploadCover(ctx context.Context, slug string, file FileUpload) (*domain.Article, error) {
	article, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	url, err := uploadImage(ctx, s.store, fmt.Sprintf("articles/%s", slug), "cover", file, MaxCoverSizeBytes)
	if err != nil {
		return nil, err
	}

	previous := article.CoverURL
	article.CoverURL = url
	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	if previous != "" && previous != url {
		deleteStaleObject(ctx, s.store, previous)
	}

	return article, nil
}

// uploadImage checks type and size, then stores the file under
// <namespace>/<name>-<timestamp>.<ext>.
func uploadImage(ctx context.Context, store storage.ObjectStore, namespace, name string, file FileUpload, maxBytes int) (string, error) {
	ext, ok := allowedImageExt[file.ContentType]
	if !ok {
		return "", domain.ValidationError("unsupported image type %q", file.ContentType)
	}
	if len(file.Data) == 0 {
		return "", domain.ValidationError("empty upload")
	}
	if len(file.Data) > maxBytes {
		return "", domain.ValidationError("image exceeds %d bytes", maxBytes)
	}

	path := fmt.Sprintf("%s/%s-%d.%s", namespace, name, time.Now().UnixNano(), ext)
	url, err := store.Put(ctx, path, file.ContentType, bytes.NewReader(file.Data))
	if err != nil {
		metrics.StorageOperationsTotal.WithLabelValues("put", "error").Inc()
		return "", err
	}
	metrics.StorageOperationsTotal.WithLabelValues("put", "success").Inc()
	return url, nil
}

// deleteStaleObject removes an object that is no longer referenced.
// Failures are logged, never escalated.
func deleteStaleObject(ctx context.Context, store storage.ObjectStore, url string) {
	if err := store.Delete(ctx, url); err != nil {
		metrics.StorageOperationsTotal.WithLabelValues("delete", "error").Inc()
		logger.Warn("Failed to delete stale object",
			slog.String("url", url),
			slog.String("error", err.Error()))
		return
	}
	metrics.StorageOperationsTotal.WithLabelValues("delete", "success").Inc()
}
