package service

import (
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

// MaxBlockImageSizeBytes caps individual content-block image uploads.
const MaxBlockImageSizeBytes = 2 << 20

// WorkService implements the work record lifecycle. It shares the article
// contract and adds the ordered content-block model with its upload
// pipeline.
type WorkService struct {
	repo      repository.WorkRepository
	store     storage.ObjectStore
	validator *validator.Validator
}

// NewWorkService creates a new WorkService.
func NewWorkService(repo repository.WorkRepository, store storage.ObjectStore, v *validator.Validator) *WorkService {
	return &WorkService{repo: repo, store: store, validator: v}
}

// Create validates and persists a new work.
func (s *WorkService) Create(ctx context.Context, in *domain.WorkInput) (*domain.Work, error) {
	if err := validator.AsDomainError(s.validator.ValidateWorkInput(in)); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}

	work := &domain.Work{
		ID:          uuid.New().String(),
		Slug:        in.Slug,
		Title:       in.Title,
		Description: in.Description,
		Tag:         dedupe(in.Tag),
		CoverURL:    in.CoverURL,
		Status:      status,
	}
	if status == domain.StatusPublished {
		now := time.Now().UTC()
		work.PublishedAt = &now
	}

	if err := s.repo.Insert(ctx, work); err != nil {
		metrics.ContentOperationsTotal.WithLabelValues("work", "create", "error").Inc()
		return nil, err
	}

	metrics.ContentOperationsTotal.WithLabelValues("work", "create", "success").Inc()
	logger.Info("Work created",
		slog.String("slug", work.Slug),
		slog.String("status", string(work.Status)))
	return work, nil
}

// List returns works ordered published-first, newest-first.
func (s *WorkService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Work, error) {
	if filter.Status != "" && !domain.IsValidStatus(filter.Status) {
		return nil, domain.ValidationError("unknown status %q", filter.Status)
	}
	return s.repo.List(ctx, filter)
}

// GetBySlug returns the work addressed by slug.
func (s *WorkService) GetBySlug(ctx context.Context, slug string) (*domain.Work, error) {
	work, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("work %q not found", slug))
	}
	return work, nil
}

// Update applies a partial update with the same publish-transition rule as
// articles: publishedAt is stamped once and never reset.
func (s *WorkService) Update(ctx context.Context, slug string, patch *domain.WorkPatch) (*domain.Work, error) {
	if err := validator.AsDomainError(s.validator.ValidateWorkPatch(patch)); err != nil {
		return nil, err
	}

	work, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		work.Title = *patch.Title
	}
	if patch.Description != nil {
		work.Description = *patch.Description
	}
	if patch.Tag != nil {
		work.Tag = dedupe(*patch.Tag)
	}
	if patch.CoverURL != nil {
		work.CoverURL = *patch.CoverURL
	}
	if patch.Status != nil {
		toPublished := work.Status != domain.StatusPublished && *patch.Status == domain.StatusPublished
		if toPublished && work.PublishedAt == nil {
			now := time.Now().UTC()
			work.PublishedAt = &now
		}
		work.Status = *patch.Status
	}

	if err := s.repo.Update(ctx, work); err != nil {
		metrics.ContentOperationsTotal.WithLabelValues("work", "update", "error").Inc()
		return nil, err
	}

	metrics.ContentOperationsTotal.WithLabelValues("work", "update", "success").Inc()
	return work, nil
}

// Delete removes the work and cascades into its stored objects: the storage
// namespace and the cover are removed best-effort before the document.
// Deleting an unknown slug succeeds.
func (s *WorkService) Delete(ctx context.Context, slug string) error {
	work, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if work == nil {
		return nil
	}

	if err := s.store.DeletePrefix(ctx, "works/"+slug); err != nil {
		logger.Warn("Failed to delete work storage namespace",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
	}
	if work.CoverURL != "" {
		deleteStaleObject(ctx, s.store, work.CoverURL)
	}

	if err := s.repo.Delete(ctx, slug); err != nil {
		metrics.ContentOperationsTotal.WithLabelValues("work", "delete", "error").Inc()
		return err
	}

	metrics.ContentOperationsTotal.WithLabelValues("work", "delete", "success").Inc()
	logger.Info("Work deleted", slog.String("slug", slug))
	return nil
}

// UploadCover stores a new cover image under the work's namespace and binds
// its URL to the record.
func (s *WorkService) UploadCover(ctx context.Context, slug string, file FileUpload) (*domain.Work, error) {
	work, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	url, err := uploadImage(ctx, s.store, fmt.Sprintf("works/%s", slug), "cover", file, MaxCoverSizeBytes)
	if err != nil {
		return nil, err
	}

	previous := work.CoverURL
	work.CoverURL = url
	if err := s.repo.Update(ctx, work); err != nil {
		return nil, err
	}

	if previous != "" && previous != url {
		deleteStaleObject(ctx, s.store, previous)
	}

	return work, nil
}

// SaveContentBlocks resolves block slots into image URLs and persists the
// block list.
//
// Shape and the 10-image cap are validated before any upload or write. Each
// slot bound to an uploaded file is stored first; only on success does its
// URL enter the block. Blocks left without images are dropped. Previously
// persisted objects no longer referenced after the write are deleted
// best-effort; upload-then-write is not transactional, so a mid-sequence
// failure can leave orphaned objects behind.
func (s *WorkService) SaveContentBlocks(ctx context.Context, slug string, blocks []domain.BlockInput, files map[string]FileUpload) (*domain.Work, error) {
	if err := validator.AsDomainError(s.validator.ValidateBlocks(blocks)); err != nil {
		return nil, err
	}
	for _, b := range blocks {
		for _, slot := range b.Slots {
			if slot.FileKey == "" {
				continue
			}
			if _, ok := files[slot.FileKey]; !ok {
				return nil, domain.ValidationError("no uploaded file for key %q", slot.FileKey)
			}
		}
	}

	work, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	previous := referencedBlockURLs(work.Blocks)

	resolved := make([]domain.ContentBlock, 0, len(blocks))
	for i, b := range blocks {
		block := domain.ContentBlock{Type: b.Type}
		for j, slot := range b.Slots {
			switch {
			case slot.FileKey != "":
				name := fmt.Sprintf("blocks/b%d-s%d", i, j)
				url, err := uploadImage(ctx, s.store, "works/"+slug, name, files[slot.FileKey], MaxBlockImageSizeBytes)
				if err != nil {
					return nil, err
				}
				block.Images = append(block.Images, url)
			case slot.URL != "":
				block.Images = append(block.Images, slot.URL)
			}
		}
		if len(block.Images) > 0 {
			resolved = append(resolved, block)
		}
	}

	work.Blocks = resolved
	if err := s.repo.Update(ctx, work); err != nil {
		metrics.ContentOperationsTotal.WithLabelValues("work", "save_blocks", "error").Inc()
		return nil, err
	}

	// Only after the write is confirmed are replaced objects cleaned up.
	current := referencedBlockURLs(resolved)
	for url := range previous {
		if _, still := current[url]; !still {
			deleteStaleObject(ctx, s.store, url)
		}
	}

	metrics.ContentOperationsTotal.WithLabelValues("work", "save_blocks", "success").Inc()
	logger.Info("Work blocks saved",
		slog.String("slug", slug),
		slog.Int("blocks", len(resolved)))
	return work, nil
}

// Rename moves the work to a new slug in one atomic store operation. Stored
// objects keep their URLs; uploads after the rename use the new namespace.
func (s *WorkService) Rename(ctx context.Context, oldSlug, newSlug string) (*domain.Work, error) {
	if err := validator.AsDomainError(s.validator.ValidateSlug(newSlug)); err != nil {
		return nil, err
	}
	if oldSlug == newSlug {
		return s.GetBySlug(ctx, oldSlug)
	}

	if err := s.repo.Rename(ctx, oldSlug, newSlug); err != nil {
		metrics.ContentOperationsTotal.WithLabelValues("work", "rename", "error").Inc()
		return nil, err
	}

	metrics.ContentOperationsTotal.WithLabelValues("work", "rename", "success").Inc()
	logger.Info("Work renamed",
		slog.String("from", oldSlug),
		slog.String("to", newSlug))
	return s.GetBySlug(ctx, newSlug)
}

// ListTags returns the distinct tag values across all works, sorted.
func (s *WorkService) ListTags(ctx context.Context) ([]string, error) {
	return s.repo.DistinctTags(ctx)
}

func referencedBlockURLs(blocks []domain.ContentBlock) map[string]struct{} {
	urls := make(map[string]struct{})
	for _, b := range blocks {
		for _, u := range b.Images {
			urls[u] = struct{}{}
		}
	}
	return urls
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
