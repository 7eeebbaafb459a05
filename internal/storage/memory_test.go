package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/draftforge/go-sitegen/internal/document"
	"github.com/draftforge/go-sitegen/internal/storage"
)

func testDocument(projectID uuid.UUID) *document.Document {
	doc := document.New(projectID)
	doc.Site = document.SiteConfig{
		Name:    "Acme Plumbing",
		Tagline: "Fast and friendly",
		Colors:  document.ColorPalette{Primary: "#003366"},
	}
	doc.Navigation = &document.NavigationConfig{
		PageOrder: []string{"home", "services"},
		Labels:    map[string]string{"services": "What We Do"},
	}
	doc.Pages = []*document.Page{
		{
			Slug:  "home",
			Title: "Home",
			Hero:  &document.HeroBlock{Headline: "Welcome"},
			SEO:   document.SEOMeta{Title: "Acme Plumbing"},
			Sections: []*document.Section{
				{ID: "a", Kind: "hero", Order: 0, Data: map[string]any{"headline": "Welcome"}},
				{ID: "b", Kind: "text", Order: 1, Data: map[string]any{"body": "We fix pipes."}},
			},
		},
		{
			Slug:   "services",
			Title:  "Services",
			Status: document.StatusPublished,
			Sections: []*document.Section{
				{ID: "c", Kind: "services", Order: 0, Data: map[string]any{"items": []any{"Repairs"}}},
			},
		},
	}
	return doc
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	projectID := uuid.New()
	ctx := context.Background()

	doc := testDocument(projectID)
	if err := store.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, projectID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Site.Name != "Acme Plumbing" {
		t.Fatalf("unexpected site: %+v", loaded.Site)
	}
	if len(loaded.Pages) != 2 || loaded.Pages[0].Slug != "home" {
		t.Fatalf("unexpected pages: %+v", loaded.Pages)
	}
	if loaded.Navigation == nil || loaded.Navigation.Labels["services"] != "What We Do" {
		t.Fatalf("unexpected navigation: %+v", loaded.Navigation)
	}
}

func TestMemoryStoreIsolatesCopies(t *testing.T) {
	store := storage.NewMemoryStore()
	projectID := uuid.New()
	ctx := context.Background()

	doc := testDocument(projectID)
	if err := store.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	doc.Pages[0].Title = "Changed"
	doc.Pages[0].Sections[0].Data["headline"] = "Changed"

	loaded, err := store.Load(ctx, projectID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Pages[0].Title != "Home" {
		t.Fatalf("store aliased saved document: %s", loaded.Pages[0].Title)
	}
	if loaded.Pages[0].Sections[0].Data["headline"] != "Welcome" {
		t.Fatalf("store aliased section data: %v", loaded.Pages[0].Sections[0].Data)
	}

	// Mutating a loaded copy must not affect later loads.
	loaded.Pages[1].Slug = "mutated"
	again, err := store.Load(ctx, projectID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if again.Pages[1].Slug != "services" {
		t.Fatalf("store aliased loaded document: %s", again.Pages[1].Slug)
	}
}

func TestMemoryStoreSaveIsLastWriteWins(t *testing.T) {
	store := storage.NewMemoryStore()
	projectID := uuid.New()
	ctx := context.Background()

	if err := store.Save(ctx, testDocument(projectID)); err != nil {
		t.Fatalf("save: %v", err)
	}

	replacement := document.New(projectID)
	replacement.Pages = []*document.Page{{Slug: "only"}}
	if err := store.Save(ctx, replacement); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := store.Load(ctx, projectID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Pages) != 1 || loaded.Pages[0].Slug != "only" {
		t.Fatalf("expected replacement document got %+v", loaded.Pages)
	}
}

func TestMemoryStorePublishAndDelete(t *testing.T) {
	store := storage.NewMemoryStore()
	projectID := uuid.New()
	ctx := context.Background()

	if err := store.Publish(ctx, projectID); !errors.Is(err, &storage.DocumentNotFoundError{}) {
		t.Fatalf("expected not found got %v", err)
	}

	if err := store.Save(ctx, testDocument(projectID)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Publish(ctx, projectID); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if _, ok := store.PublishedAt(projectID); !ok {
		t.Fatal("expected publish timestamp")
	}

	if err := store.Delete(ctx, projectID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Load(ctx, projectID); !errors.Is(err, &storage.DocumentNotFoundError{}) {
		t.Fatalf("expected not found after delete got %v", err)
	}
}

func TestMemoryStoreRequiresProjectID(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Load(ctx, uuid.Nil); !errors.Is(err, storage.ErrProjectRequired) {
		t.Fatalf("expected ErrProjectRequired got %v", err)
	}
	if err := store.Save(ctx, document.New(uuid.Nil)); !errors.Is(err, storage.ErrProjectRequired) {
		t.Fatalf("expected ErrProjectRequired got %v", err)
	}
}
