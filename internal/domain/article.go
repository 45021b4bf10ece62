package domain

import "time"

// Status represents the publish state of a content record.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusPublished Status = "Published"
)

// ValidStatuses contains all valid content statuses.
var ValidStatuses = []Status{StatusDraft, StatusPublished}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status Status) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Article represents an article record. The slug is the public identifier
// and is immutable after creation.
type Article struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Title       LocalizedText    `json:"title"`
	Description LocalizedText    `json:"description"`
	Content     LocalizedText    `json:"content"`
	Tags        LocalizedTagList `json:"tags"`
	CoverURL    string           `json:"coverUrl,omitempty"`
	Status      Status           `json:"status"`
	PublishedAt *time.Time       `json:"publishedAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ArticleInput carries the fields accepted when creating an article.
type ArticleInput struct {
	Slug        string           `json:"slug"`
	Title       LocalizedText    `json:"title"`
	Description LocalizedText    `json:"description"`
	Content     LocalizedText    `json:"content"`
	Tags        LocalizedTagList `json:"tags"`
	CoverURL    string           `json:"coverUrl"`
	Status      Status           `json:"status"`
}

// ArticlePatch carries a partial update. A nil field keeps the current
// value. Slug is deliberately absent: it is immutable and ignored when sent.
type ArticlePatch struct {
	Title       *LocalizedText    `json:"title"`
	Description *LocalizedText    `json:"description"`
	Content     *LocalizedText    `json:"content"`
	Tags        *LocalizedTagList `json:"tags"`
	CoverURL    *string           `json:"coverUrl"`
	Status      *Status           `json:"status"`
}

// ListFilter narrows list results. Empty status means no filtering.
type ListFilter struct {
	Status Status
}
