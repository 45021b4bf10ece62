package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-admin/internal/domain"
	"cms-admin/internal/validator"
)

func TestValidateArticleInput(t *testing.T) {
	v := validator.NewValidator(domain.LangEN)

	t.Run("valid input passes", func(t *testing.T) {
		in := &domain.ArticleInput{
			Slug:  "hello-world",
			Title: domain.LocalizedText{EN: "Hello"},
		}
		assert.NoError(t, v.ValidateArticleInput(in))
	})

	t.Run("missing slug fails", func(t *testing.T) {
		in := &domain.ArticleInput{Title: domain.LocalizedText{EN: "Hello"}}
		err := v.ValidateArticleInput(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "slug")
	})

	t.Run("bad slug format fails", func(t *testing.T) {
		in := &domain.ArticleInput{
			Slug:  "Hello World!",
			Title: domain.LocalizedText{EN: "Hello"},
		}
		assert.Error(t, v.ValidateArticleInput(in))
	})

	t.Run("missing title fails", func(t *testing.T) {
		in := &domain.ArticleInput{Slug: "hello-world"}
		err := v.ValidateArticleInput(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("indonesian-only title fails under english default", func(t *testing.T) {
		in := &domain.ArticleInput{
			Slug:  "hello-world",
			Title: domain.LocalizedText{ID: "Halo"},
		}
		err := v.ValidateArticleInput(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("indonesian-only title passes under indonesian default", func(t *testing.T) {
		vID := validator.NewValidator(domain.LangID)
		in := &domain.ArticleInput{
			Slug:  "halo",
			Title: domain.LocalizedText{ID: "Halo"},
		}
		assert.NoError(t, vID.ValidateArticleInput(in))
	})

	t.Run("unknown status fails", func(t *testing.T) {
		in := &domain.ArticleInput{
			Slug:   "hello-world",
			Title:  domain.LocalizedText{EN: "Hello"},
			Status: "Archived",
		}
		assert.Error(t, v.ValidateArticleInput(in))
	})
}

func TestValidateArticlePatch(t *testing.T) {
	v := validator.NewValidator(domain.LangEN)

	t.Run("empty patch passes", func(t *testing.T) {
		assert.NoError(t, v.ValidateArticlePatch(&domain.ArticlePatch{}))
	})

	t.Run("invalid status fails", func(t *testing.T) {
		bad := domain.Status("archived")
		assert.Error(t, v.ValidateArticlePatch(&domain.ArticlePatch{Status: &bad}))
	})

	t.Run("clearing the title fails", func(t *testing.T) {
		empty := domain.LocalizedText{}
		assert.Error(t, v.ValidateArticlePatch(&domain.ArticlePatch{Title: &empty}))
	})
}

func TestValidateBlocks(t *testing.T) {
	v := validator.NewValidator(domain.LangEN)

	t.Run("valid blocks pass", func(t *testing.T) {
		blocks := []domain.BlockInput{
			{Type: domain.BlockTypeSingle, Slots: []domain.BlockSlot{{URL: "u1"}}},
			{Type: domain.BlockTypePair, Slots: []domain.BlockSlot{{URL: "u2"}, {FileKey: "f0"}}},
		}
		assert.NoError(t, v.ValidateBlocks(blocks))
	})

	t.Run("pair with one slot fails", func(t *testing.T) {
		blocks := []domain.BlockInput{
			{Type: domain.BlockTypePair, Slots: []domain.BlockSlot{{URL: "u"}}},
		}
		assert.Error(t, v.ValidateBlocks(blocks))
	})

	t.Run("unknown type fails", func(t *testing.T) {
		blocks := []domain.BlockInput{
			{Type: "triple", Slots: []domain.BlockSlot{{URL: "u"}}},
		}
		assert.Error(t, v.ValidateBlocks(blocks))
	})

	t.Run("more than ten images fails", func(t *testing.T) {
		var blocks []domain.BlockInput
		for i := 0; i < 6; i++ {
			blocks = append(blocks, domain.BlockInput{
				Type:  domain.BlockTypePair,
				Slots: []domain.BlockSlot{{URL: "a"}, {URL: "b"}},
			})
		}
		err := v.ValidateBlocks(blocks)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at most 10 images allowed, got 12")
	})

	t.Run("empty slots do not count toward the cap", func(t *testing.T) {
		var blocks []domain.BlockInput
		for i := 0; i < 6; i++ {
			blocks = append(blocks, domain.BlockInput{
				Type:  domain.BlockTypePair,
				Slots: []domain.BlockSlot{{URL: "a"}, {}},
			})
		}
		assert.NoError(t, v.ValidateBlocks(blocks))
	})
}

func TestValidateSlug(t *testing.T) {
	v := validator.NewValidator(domain.LangEN)

	assert.NoError(t, v.ValidateSlug("my-new-work"))
	assert.Error(t, v.ValidateSlug(""))
	assert.Error(t, v.ValidateSlug("Has Spaces"))
	assert.Error(t, v.ValidateSlug("-leading-dash"))
}
