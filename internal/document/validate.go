package document

import (
	"errors"
	"fmt"
	"strings"

	slug "github.com/goliatone/go-slug"
)

var (
	ErrDocumentRequired = errors.New("document: document is required")
	ErrSlugRequired     = errors.New("document: page slug is required")
	ErrSlugInvalid      = errors.New("document: page slug contains invalid characters")
	ErrDuplicateSlug    = errors.New("document: duplicate page slug")
)

// DuplicateSlugError reports which slug violated page uniqueness.
type DuplicateSlugError struct {
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	if e == nil {
		return ErrDuplicateSlug.Error()
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateSlug.Error(), e.Slug)
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}

// NormalizeSlug canonicalizes user or generator supplied slugs into the
// URL-safe form pages are keyed by.
func NormalizeSlug(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrSlugRequired
	}
	normalizer := slug.Default()
	normalized, err := normalizer.Normalize(trimmed)
	if err != nil || normalized == "" {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}

// ValidateSlugUniqueness checks that every page slug is pairwise distinct.
// Returns a DuplicateSlugError naming the first offending slug.
func ValidateSlugUniqueness(doc *Document) error {
	if doc == nil {
		return ErrDocumentRequired
	}
	seen := make(map[string]struct{}, len(doc.Pages))
	for _, page := range doc.Pages {
		if page == nil {
			continue
		}
		key := strings.TrimSpace(page.Slug)
		if key == "" {
			return ErrSlugRequired
		}
		if _, ok := seen[key]; ok {
			return &DuplicateSlugError{Slug: key}
		}
		seen[key] = struct{}{}
	}
	return nil
}

// NormalizeSectionOrder re-sequences section Order values into a dense 0..n-1
// permutation matching current array position. Idempotent; nil sections are
// dropped so downstream consumers never see holes.
func NormalizeSectionOrder(page *Page) *Page {
	if page == nil {
		return nil
	}
	compact := page.Sections[:0]
	for _, section := range page.Sections {
		if section == nil {
			continue
		}
		compact = append(compact, section)
	}
	page.Sections = compact
	for i, section := range page.Sections {
		section.Order = i
	}
	return page
}
