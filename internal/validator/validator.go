package validator

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cms-admin/internal/domain"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validStatuses = []interface{}{domain.StatusDraft, domain.StatusPublished}
)

// Validator provides validation methods for content inputs. All rules run
// before any mutation or upload happens.
type Validator struct {
	defaultLang string
}

// NewValidator creates a Validator requiring titles in defaultLang.
func NewValidator(defaultLang string) *Validator {
	return &Validator{defaultLang: defaultLang}
}

// requireTitle demands a value in the configured default language. The
// Resolve fallback is deliberately not used here: an id-only title must not
// satisfy an en requirement.
func (v *Validator) requireTitle(title domain.LocalizedText, msg string) error {
	if title.Get(v.defaultLang) == "" {
		return validation.Errors{
			"title": validation.NewError("title_required", msg),
		}
	}
	return nil
}

// ValidateArticleInput validates an article create input.
func (v *Validator) ValidateArticleInput(in *domain.ArticleInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&in.Status,
			validation.In(validStatuses...).Error("invalid_status"),
		),
	)
	if err != nil {
		return err
	}

	return v.requireTitle(in.Title, "title is required")
}

// ValidateArticlePatch validates the fields present in a partial update.
func (v *Validator) ValidateArticlePatch(patch *domain.ArticlePatch) error {
	if patch.Status != nil && !domain.IsValidStatus(*patch.Status) {
		return validation.Errors{
			"status": validation.NewError("invalid_status", "invalid_status"),
		}
	}
	if patch.Title != nil {
		if err := v.requireTitle(*patch.Title, "title cannot be cleared"); err != nil {
			return err
		}
	}
	return nil
}

// ValidateWorkInput validates a work create input.
func (v *Validator) ValidateWorkInput(in *domain.WorkInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&in.Status,
			validation.In(validStatuses...).Error("invalid_status"),
		),
	)
	if err != nil {
		return err
	}

	return v.requireTitle(in.Title, "title is required")
}

// ValidateWorkPatch validates the fields present in a partial work update.
func (v *Validator) ValidateWorkPatch(patch *domain.WorkPatch) error {
	if patch.Status != nil && !domain.IsValidStatus(*patch.Status) {
		return validation.Errors{
			"status": validation.NewError("invalid_status", "invalid_status"),
		}
	}
	if patch.Title != nil {
		if err := v.requireTitle(*patch.Title, "title cannot be cleared"); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSlug validates a bare slug value, used for renames.
func (v *Validator) ValidateSlug(slug string) error {
	return validation.Validate(slug,
		validation.Required.Error("slug_required"),
		validation.Match(slugRegex).Error("invalid_slug_format"),
	)
}

// ValidateBlocks checks block shapes and the total image cap before any
// upload happens.
func (v *Validator) ValidateBlocks(blocks []domain.BlockInput) error {
	for i, b := range blocks {
		want := b.Type.SlotCount()
		if want == 0 {
			return validation.Errors{
				fmt.Sprintf("blocks.%d.type", i): validation.NewError("invalid_block_type", fmt.Sprintf("unknown block type %q", b.Type)),
			}
		}
		if len(b.Slots) != want {
			return validation.Errors{
				fmt.Sprintf("blocks.%d.slots", i): validation.NewError("invalid_slot_count", fmt.Sprintf("%s block requires %d slots, got %d", b.Type, want, len(b.Slots))),
			}
		}
	}

	if n := domain.CountResolvedImages(blocks); n > domain.MaxBlockImages {
		return validation.Errors{
			"blocks": validation.NewError("too_many_images", fmt.Sprintf("at most %d images allowed, got %d", domain.MaxBlockImages, n)),
		}
	}

	return nil
}

// AsDomainError converts a validation failure into a domain validation
// error; nil passes through.
func AsDomainError(err error) error {
	if err == nil {
		return nil
	}
	return domain.WrapError(domain.KindValidation, err.Error(), err)
}
