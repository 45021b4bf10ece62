package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cms-admin/internal/domain"
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
// Localized fields and tags live in JSONB columns; the slug carries a unique
// constraint that serves as the only concurrency guard on creation.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

const articleColumns = `id, slug, title, description, content, tags, cover_url, status, published_at, created_at, updated_at`

// Insert persists a new article. A duplicate slug surfaces as a conflict
// error; at most one of two concurrent inserts with the same slug succeeds.
func (r *PostgresArticleRepository) Insert(ctx context.Context, a *domain.Article) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO articles (id, slug, title, description, content, tags, cover_url, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, a.ID, a.Slug, a.Title, a.Description, a.Content, a.Tags, a.CoverURL, a.Status, a.PublishedAt)

	if err := row.Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.KindConflict, fmt.Sprintf("slug %q already exists", a.Slug))
		}
		return domain.WrapError(domain.KindStore, "insert article", err)
	}
	return nil
}

// List returns articles ordered by published_at descending with drafts
// (null published_at) after published records, created_at breaking ties.
func (r *PostgresArticleRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	args := []any{}
	if filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY published_at DESC NULLS LAST, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.WrapError(domain.KindStore, "list articles", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := scanArticle(rows, &a); err != nil {
			return nil, domain.WrapError(domain.KindStore, "scan article", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(domain.KindStore, "read articles", err)
	}
	return articles, nil
}

// GetBySlug returns the article with the given slug, or (nil, nil) when no
// record exists.
func (r *PostgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)

	var a domain.Article
	if err := scanArticle(row, &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapError(domain.KindStore, "get article", err)
	}
	return &a, nil
}

// Update rewrites all mutable fields of the record addressed by slug.
func (r *PostgresArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET title = $2, description = $3, content = $4, tags = $5,
		    cover_url = $6, status = $7, published_at = $8, updated_at = NOW()
		WHERE slug = $1
		RETURNING updated_at
	`, a.Slug, a.Title, a.Description, a.Content, a.Tags, a.CoverURL, a.Status, a.PublishedAt)

	if err := row.Scan(&a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewError(domain.KindNotFound, fmt.Sprintf("article %q not found", a.Slug))
		}
		return domain.WrapError(domain.KindStore, "update article", err)
	}
	return nil
}

// Delete removes the record addressed by slug. Deleting an unknown slug is
// not an error.
func (r *PostgresArticleRepository) Delete(ctx context.Context, slug string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE slug = $1`, slug); err != nil {
		return domain.WrapError(domain.KindStore, "delete article", err)
	}
	return nil
}

func scanArticle(row pgx.Row, a *domain.Article) error {
	return row.Scan(
		&a.ID, &a.Slug, &a.Title, &a.Description, &a.Content, &a.Tags,
		&a.CoverURL, &a.Status, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
