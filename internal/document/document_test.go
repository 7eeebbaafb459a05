package document_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/draftforge/go-sitegen/internal/document"
)

func TestNormalizeSlug(t *testing.T) {
	slug, err := document.NormalizeSlug("  About Us  ")
	if err != nil {
		t.Fatalf("normalize slug: %v", err)
	}
	if slug != "about-us" {
		t.Fatalf("expected about-us got %s", slug)
	}

	if _, err := document.NormalizeSlug("   "); !errors.Is(err, document.ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired got %v", err)
	}
}

func TestValidateSlugUniqueness(t *testing.T) {
	doc := document.New(uuid.New())
	doc.Pages = []*document.Page{
		{Slug: "home"},
		{Slug: "about"},
	}
	if err := document.ValidateSlugUniqueness(doc); err != nil {
		t.Fatalf("validate: %v", err)
	}

	doc.Pages = append(doc.Pages, &document.Page{Slug: "about"})
	err := document.ValidateSlugUniqueness(doc)
	if !errors.Is(err, document.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug got %v", err)
	}
	var dup *document.DuplicateSlugError
	if !errors.As(err, &dup) || dup.Slug != "about" {
		t.Fatalf("expected duplicate slug about got %v", err)
	}
}

func TestNormalizeSectionOrder(t *testing.T) {
	page := &document.Page{
		Slug: "home",
		Sections: []*document.Section{
			{ID: "a", Kind: "hero", Order: 7},
			nil,
			{ID: "b", Kind: "text", Order: 2},
			{ID: "c", Kind: "cta", Order: 2},
		},
	}

	document.NormalizeSectionOrder(page)

	if len(page.Sections) != 3 {
		t.Fatalf("expected 3 sections got %d", len(page.Sections))
	}
	for i, section := range page.Sections {
		if section.Order != i {
			t.Fatalf("section %s order %d expected %d", section.ID, section.Order, i)
		}
	}
	if page.Sections[0].ID != "a" || page.Sections[1].ID != "b" || page.Sections[2].ID != "c" {
		t.Fatalf("section order changed: %v", page.Sections)
	}

	// Idempotent.
	document.NormalizeSectionOrder(page)
	for i, section := range page.Sections {
		if section.Order != i {
			t.Fatalf("renormalize changed order at %d", i)
		}
	}
}

func TestPagePayloadRoundTrip(t *testing.T) {
	page := &document.Page{
		Slug: "services",
		Sections: []*document.Section{
			{ID: "b", Kind: "text", Order: 1, Data: map[string]any{"body": "Hello"}},
			{ID: "a", Kind: "hero", Order: 0, Data: map[string]any{"headline": "Hi"}},
		},
	}

	raw, err := document.EncodePagePayload(page)
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}

	sections, err := document.DecodePagePayload(raw)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections got %d", len(sections))
	}
	if sections[0].ID != "a" || sections[1].ID != "b" {
		t.Fatalf("expected order-sorted sections got %s, %s", sections[0].ID, sections[1].ID)
	}
	if sections[0].Order != 0 || sections[1].Order != 1 {
		t.Fatalf("expected dense order got %d, %d", sections[0].Order, sections[1].Order)
	}
	if body, _ := sections[1].Data["body"].(string); body != "Hello" {
		t.Fatalf("expected body Hello got %v", sections[1].Data["body"])
	}
}

func TestDecodePagePayloadRejectsUnknownVersion(t *testing.T) {
	if _, err := document.DecodePagePayload(`{"sections":[],"version":"2.0"}`); !errors.Is(err, document.ErrPayloadVersion) {
		t.Fatalf("expected ErrPayloadVersion got %v", err)
	}
	if _, err := document.DecodePagePayload(""); !errors.Is(err, document.ErrPayloadEmpty) {
		t.Fatalf("expected ErrPayloadEmpty got %v", err)
	}
}

func TestCloneIsolatesSectionData(t *testing.T) {
	doc := document.New(uuid.New())
	doc.Pages = []*document.Page{
		{
			Slug: "home",
			Sections: []*document.Section{
				{ID: "a", Kind: "features", Order: 0, Data: map[string]any{
					"items": []any{map[string]any{"text": "Fast"}},
				}},
			},
		},
	}

	cloned := document.Clone(doc)
	items := cloned.Pages[0].Sections[0].Data["items"].([]any)
	items[0].(map[string]any)["text"] = "Changed"

	original := doc.Pages[0].Sections[0].Data["items"].([]any)
	if got := original[0].(map[string]any)["text"]; got != "Fast" {
		t.Fatalf("clone aliased section data: %v", got)
	}
}
