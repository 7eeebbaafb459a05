package editor_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/draftforge/go-sitegen/internal/document"
	"github.com/draftforge/go-sitegen/internal/editor"
	"github.com/draftforge/go-sitegen/internal/render"
)

func newTestEngine() *editor.Engine {
	counter := 0
	return editor.NewEngine(render.NewRegistry(), editor.WithIDGenerator(func() string {
		counter++
		return fmt.Sprintf("section-%d", counter)
	}))
}

func newTestDocument(t *testing.T, engine *editor.Engine) *document.Document {
	t.Helper()
	doc := document.New(uuid.New())
	if err := engine.AddPage(doc, &document.Page{Slug: "home", Title: "Home"}); err != nil {
		t.Fatalf("add page: %v", err)
	}
	return doc
}

func assertDenseOrder(t *testing.T, page *document.Page) {
	t.Helper()
	for i, section := range page.Sections {
		if section.Order != i {
			t.Fatalf("section %s order %d at index %d", section.ID, section.Order, i)
		}
	}
}

func TestAddPageNormalizesAndRejectsDuplicates(t *testing.T) {
	engine := newTestEngine()
	doc := document.New(uuid.New())

	if err := engine.AddPage(doc, &document.Page{Slug: "  About Us "}); err != nil {
		t.Fatalf("add page: %v", err)
	}
	if doc.Pages[0].Slug != "about-us" {
		t.Fatalf("expected normalized slug got %s", doc.Pages[0].Slug)
	}

	err := engine.AddPage(doc, &document.Page{Slug: "about us"})
	if !errors.Is(err, document.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug got %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("rejected add mutated document: %d pages", len(doc.Pages))
	}
}

func TestAddSectionSeedsDefaultsAndOrder(t *testing.T) {
	engine := newTestEngine()
	doc := newTestDocument(t, engine)

	hero := engine.AddSection(doc, "home", render.KindHero)
	text := engine.AddSection(doc, "home", render.KindText)
	if hero == nil || text == nil {
		t.Fatal("expected sections to be added")
	}
	if hero.Order != 0 || text.Order != 1 {
		t.Fatalf("expected dense order got %d, %d", hero.Order, text.Order)
	}
	if _, ok := hero.Data["headline"]; !ok {
		t.Fatalf("expected hero defaults got %v", hero.Data)
	}

	unknown := engine.AddSection(doc, "home", "countdown")
	if unknown == nil || len(unknown.Data) != 0 {
		t.Fatalf("expected empty defaults for unknown kind got %v", unknown)
	}

	if missing := engine.AddSection(doc, "missing", render.KindText); missing != nil {
		t.Fatalf("expected nil for missing page got %v", missing)
	}
}

func TestMutationSequenceKeepsOrderDense(t *testing.T) {
	engine := newTestEngine()
	doc := newTestDocument(t, engine)
	page := doc.FindPage("home")

	a := engine.AddSection(doc, "home", render.KindHero)
	b := engine.AddSection(doc, "home", render.KindText)
	c := engine.AddSection(doc, "home", render.KindCTA)
	assertDenseOrder(t, page)

	engine.MoveSection(doc, "home", c.ID, editor.MoveUp)
	assertDenseOrder(t, page)
	if page.Sections[1].ID != c.ID || page.Sections[2].ID != b.ID {
		t.Fatalf("move up misplaced sections: %v", page.Sections)
	}

	engine.DeleteSection(doc, "home", a.ID)
	assertDenseOrder(t, page)
	if len(page.Sections) != 2 || page.Sections[0].ID != c.ID {
		t.Fatalf("delete misplaced sections: %v", page.Sections)
	}

	engine.AddSection(doc, "home", render.KindFAQ)
	assertDenseOrder(t, page)
}

func TestMoveSectionBoundariesAreNoOps(t *testing.T) {
	engine := newTestEngine()
	doc := newTestDocument(t, engine)
	page := doc.FindPage("home")

	first := engine.AddSection(doc, "home", render.KindHero)
	last := engine.AddSection(doc, "home", render.KindText)

	engine.MoveSection(doc, "home", first.ID, editor.MoveUp)
	engine.MoveSection(doc, "home", last.ID, editor.MoveDown)

	if page.Sections[0].ID != first.ID || page.Sections[1].ID != last.ID {
		t.Fatalf("boundary move changed order: %v", page.Sections)
	}
	assertDenseOrder(t, page)
}

func TestUpdateSectionFieldCreatesNestedContainers(t *testing.T) {
	engine := newTestEngine()
	doc := newTestDocument(t, engine)

	section := engine.AddSection(doc, "home", render.KindPricing)
	engine.UpdateSectionField(doc, "home", section.ID, []any{"tiers", 1, "name"}, "Pro")

	tiers, ok := section.Data["tiers"].([]any)
	if !ok || len(tiers) != 2 {
		t.Fatalf("expected grown tiers list got %v", section.Data["tiers"])
	}
	tier, ok := tiers[1].(map[string]any)
	if !ok || tier["name"] != "Pro" {
		t.Fatalf("expected nested tier name got %v", tiers[1])
	}
}

func TestMutationsOnMissingTargetsAreNoOps(t *testing.T) {
	engine := newTestEngine()
	doc := newTestDocument(t, engine)
	section := engine.AddSection(doc, "home", render.KindText)

	engine.UpdateSectionField(doc, "home", "nope", []any{"body"}, "x")
	engine.UpdateSectionField(doc, "missing", section.ID, []any{"body"}, "x")
	engine.DeleteSection(doc, "home", "nope")
	engine.MoveSection(doc, "home", "nope", editor.MoveDown)
	engine.DeletePage(doc, "missing")

	page := doc.FindPage("home")
	if len(page.Sections) != 1 || page.Sections[0].Data["body"] != "" {
		t.Fatalf("no-op mutation changed state: %v", page.Sections)
	}
}

func TestArrayItemHelpers(t *testing.T) {
	engine := newTestEngine()
	doc := newTestDocument(t, engine)
	section := engine.AddSection(doc, "home", render.KindFeatures)

	engine.AddArrayItem(doc, "home", section.ID, "items", map[string]any{"text": "One"})
	engine.AddArrayItem(doc, "home", section.ID, "items", map[string]any{"text": "Two"})

	items, _ := section.Data["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 items got %v", section.Data["items"])
	}

	engine.RemoveArrayItem(doc, "home", section.ID, "items", 0)
	items, _ = section.Data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item got %v", items)
	}
	if item, _ := items[0].(map[string]any); item["text"] != "Two" {
		t.Fatalf("removed wrong item: %v", items)
	}

	engine.RemoveArrayItem(doc, "home", section.ID, "items", 5)
	items, _ = section.Data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("out-of-range removal mutated list: %v", items)
	}
}

func TestAddSectionEmptyKindIsNoOp(t *testing.T) {
	engine := newTestEngine()
	doc := newTestDocument(t, engine)

	if section := engine.AddSection(doc, "home", "   "); section != nil {
		t.Fatalf("expected nil section for empty kind got %v", section)
	}
	if sections := doc.FindPage("home").Sections; len(sections) != 0 {
		t.Fatalf("empty kind mutated page: %v", sections)
	}
}
