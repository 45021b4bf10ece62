package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cms-admin/internal/domain"
)

// PostgresWorkRepository implements WorkRepository using PostgreSQL. Content
// blocks are stored as a JSONB array and the flat tag list keeps its legacy
// name and shape.
type PostgresWorkRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWorkRepository creates a new PostgresWorkRepository.
func NewPostgresWorkRepository(pool *pgxpool.Pool) *PostgresWorkRepository {
	return &PostgresWorkRepository{pool: pool}
}

const workColumns = `id, slug, title, description, tag, cover_url, status, published_at, blocks, created_at, updated_at`

// Insert persists a new work. A duplicate slug surfaces as a conflict error.
func (r *PostgresWorkRepository) Insert(ctx context.Context, w *domain.Work) error {
	tag := w.Tag
	if tag == nil {
		tag = []string{}
	}
	blocks := w.Blocks
	if blocks == nil {
		blocks = []domain.ContentBlock{}
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO works (id, slug, title, description, tag, cover_url, status, published_at, blocks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, w.ID, w.Slug, w.Title, w.Description, tag, w.CoverURL, w.Status, w.PublishedAt, blocks)

	if err := row.Scan(&w.CreatedAt, &w.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.KindConflict, fmt.Sprintf("slug %q already exists", w.Slug))
		}
		return domain.WrapError(domain.KindStore, "insert work", err)
	}
	return nil
}

// List returns works ordered like articles: published first, newest first.
func (r *PostgresWorkRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Work, error) {
	query := `SELECT ` + workColumns + ` FROM works`
	args := []any{}
	if filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY published_at DESC NULLS LAST, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.WrapError(domain.KindStore, "list works", err)
	}
	defer rows.Close()

	var works []domain.Work
	for rows.Next() {
		var w domain.Work
		if err := scanWork(rows, &w); err != nil {
			return nil, domain.WrapError(domain.KindStore, "scan work", err)
		}
		works = append(works, w)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(domain.KindStore, "read works", err)
	}
	return works, nil
}

// GetBySlug returns the work with the given slug, or (nil, nil) when no
// record exists.
func (r *PostgresWorkRepository) GetBySlug(ctx context.Context, slug string) (*domain.Work, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+workColumns+` FROM works WHERE slug = $1`, slug)

	var w domain.Work
	if err := scanWork(row, &w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapError(domain.KindStore, "get work", err)
	}
	return &w, nil
}

// Update rewrites all mutable fields of the record addressed by slug.
func (r *PostgresWorkRepository) Update(ctx context.Context, w *domain.Work) error {
	tag := w.Tag
	if tag == nil {
		tag = []string{}
	}
	blocks := w.Blocks
	if blocks == nil {
		blocks = []domain.ContentBlock{}
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE works
		SET title = $2, description = $3, tag = $4, cover_url = $5,
		    status = $6, published_at = $7, blocks = $8, updated_at = NOW()
		WHERE slug = $1
		RETURNING updated_at
	`, w.Slug, w.Title, w.Description, tag, w.CoverURL, w.Status, w.PublishedAt, blocks)

	if err := row.Scan(&w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewError(domain.KindNotFound, fmt.Sprintf("work %q not found", w.Slug))
		}
		return domain.WrapError(domain.KindStore, "update work", err)
	}
	return nil
}

// Delete removes the record addressed by slug. Deleting an unknown slug is
// not an error.
func (r *PostgresWorkRepository) Delete(ctx context.Context, slug string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM works WHERE slug = $1`, slug); err != nil {
		return domain.WrapError(domain.KindStore, "delete work", err)
	}
	return nil
}

// Rename moves the record to a new slug in a single statement, so the rename
// is atomic under the unique constraint instead of a write-new-delete-old
// sequence.
func (r *PostgresWorkRepository) Rename(ctx context.Context, oldSlug, newSlug string) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE works SET slug = $2, updated_at = NOW() WHERE slug = $1
	`, oldSlug, newSlug)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.KindConflict, fmt.Sprintf("slug %q already exists", newSlug))
		}
		return domain.WrapError(domain.KindStore, "rename work", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.NewError(domain.KindNotFound, fmt.Sprintf("work %q not found", oldSlug))
	}
	return nil
}

// DistinctTags returns the sorted set of tag values used across all works.
func (r *PostgresWorkRepository) DistinctTags(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT t.value
		FROM works, jsonb_array_elements_text(tag) AS t(value)
		WHERE t.value <> ''
		ORDER BY t.value
	`)
	if err != nil {
		return nil, domain.WrapError(domain.KindStore, "list work tags", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, domain.WrapError(domain.KindStore, "scan work tag", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(domain.KindStore, "read work tags", err)
	}
	return tags, nil
}

func scanWork(row pgx.Row, w *domain.Work) error {
	return row.Scan(
		&w.ID, &w.Slug, &w.Title, &w.Description, &w.Tag, &w.CoverURL,
		&w.Status, &w.PublishedAt, &w.Blocks, &w.CreatedAt, &w.UpdatedAt,
	)
}
