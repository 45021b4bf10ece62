package domain

import "time"

// BlockType distinguishes full-width single-image blocks from two-column
// pair blocks.
type BlockType string

const (
	BlockTypeSingle BlockType = "single"
	BlockTypePair   BlockType = "pair"
)

// MaxBlockImages is the cap on the total number of images across all content
// blocks of a single work.
const MaxBlockImages = 10

// ContentBlock is an ordered unit of a work's body holding one or two image
// URLs. Blocks with no images are never persisted.
type ContentBlock struct {
	Type   BlockType `json:"type"`
	Images []string  `json:"images"`
}

// ImageCount returns the number of images across blocks.
func ImageCount(blocks []ContentBlock) int {
	n := 0
	for _, b := range blocks {
		n += len(b.Images)
	}
	return n
}

// Work represents a portfolio work record. The tag field keeps the flat
// single-list shape of its legacy schema and is intentionally not unified
// with Article.Tags.
type Work struct {
	ID          string         `json:"id"`
	Slug        string         `json:"slug"`
	Title       LocalizedText  `json:"title"`
	Description LocalizedText  `json:"description"`
	Tag         []string       `json:"tag"`
	CoverURL    string         `json:"coverUrl,omitempty"`
	Status      Status         `json:"status"`
	PublishedAt *time.Time     `json:"publishedAt,omitempty"`
	Blocks      []ContentBlock `json:"blocks"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// WorkInput carries the fields accepted when creating a work.
type WorkInput struct {
	Slug        string        `json:"slug"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Tag         []string      `json:"tag"`
	CoverURL    string        `json:"coverUrl"`
	Status      Status        `json:"status"`
}

// WorkPatch carries a partial update for a work. A nil field keeps the
// current value; the slug cannot be changed through a patch.
type WorkPatch struct {
	Title       *LocalizedText `json:"title"`
	Description *LocalizedText `json:"description"`
	Tag         *[]string      `json:"tag"`
	CoverURL    *string        `json:"coverUrl"`
	Status      *Status        `json:"status"`
}

// BlockSlot is one image position inside a block being saved. A slot either
// references an already stored object by URL, names an uploaded file by its
// multipart field key, or is empty and gets dropped.
type BlockSlot struct {
	URL     string `json:"url"`
	FileKey string `json:"fileKey"`
}

// IsEmpty reports whether the slot resolves to no image.
func (s BlockSlot) IsEmpty() bool {
	return s.URL == "" && s.FileKey == ""
}

// BlockInput is a content block as submitted by the editor, before uploads
// are resolved into URLs.
type BlockInput struct {
	Type  BlockType   `json:"type"`
	Slots []BlockSlot `json:"slots"`
}

// SlotCount returns the required slot count for a block type, or 0 for an
// unknown type.
func (t BlockType) SlotCount() int {
	switch t {
	case BlockTypeSingle:
		return 1
	case BlockTypePair:
		return 2
	default:
		return 0
	}
}

// CountResolvedImages returns the number of non-empty slots across blocks.
func CountResolvedImages(blocks []BlockInput) int {
	n := 0
	for _, b := range blocks {
		for _, s := range b.Slots {
			if !s.IsEmpty() {
				n++
			}
		}
	}
	return n
}
