package editor

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/draftforge/go-sitegen/internal/document"
	"github.com/draftforge/go-sitegen/internal/logging"
	"github.com/draftforge/go-sitegen/pkg/interfaces"
)

// Direction selects where MoveSection shifts a section.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

var ErrPageRequired = errors.New("editor: page is required")

// DefaultsProvider supplies the registry-default data for a section kind.
// The render registry satisfies this contract.
type DefaultsProvider interface {
	Defaults(kind string) map[string]any
}

// IDGenerator produces section identifiers.
type IDGenerator func() string

// Option mutates the engine during construction.
type Option func(*Engine)

// WithIDGenerator overrides section id generation, useful for deterministic tests.
func WithIDGenerator(generator IDGenerator) Option {
	return func(e *Engine) {
		if generator != nil {
			e.newID = generator
		}
	}
}

// WithLogger attaches the diagnostics logger used for no-op reports.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine applies synchronous, in-memory mutations to a Document. Operations
// never perform I/O; persistence is an explicit separate save. Mutations
// addressing a missing page or section are no-ops with a logged diagnostic so
// editor UIs stay usable when state has drifted (e.g. a concurrent save from
// another tab).
type Engine struct {
	defaults DefaultsProvider
	newID    IDGenerator
	logger   interfaces.Logger
}

// NewEngine constructs the mutation engine. The defaults provider seeds new
// sections; pass the render registry.
func NewEngine(defaults DefaultsProvider, opts ...Option) *Engine {
	engine := &Engine{
		defaults: defaults,
		newID:    func() string { return uuid.NewString() },
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// AddPage appends a page after normalizing its slug and rejecting duplicates
// before any mutation takes place.
func (e *Engine) AddPage(doc *document.Document, page *document.Page) error {
	if doc == nil {
		return document.ErrDocumentRequired
	}
	if page == nil {
		return ErrPageRequired
	}

	slug, err := document.NormalizeSlug(page.Slug)
	if err != nil {
		return err
	}
	if doc.FindPage(slug) != nil {
		return &document.DuplicateSlugError{Slug: slug}
	}

	page.Slug = slug
	if page.Sections == nil {
		page.Sections = []*document.Section{}
	}
	document.NormalizeSectionOrder(page)
	doc.Pages = append(doc.Pages, page)
	return nil
}

// DeletePage removes the page with the given slug. Missing slugs are a no-op.
func (e *Engine) DeletePage(doc *document.Document, slug string) {
	if doc == nil {
		return
	}
	for i, page := range doc.Pages {
		if page != nil && page.Slug == slug {
			doc.Pages = append(doc.Pages[:i], doc.Pages[i+1:]...)
			return
		}
	}
	e.editLog(doc, slug, "").Debug("delete page skipped: page not found")
}

// UpdateSiteConfig replaces the document's site-wide identity.
func (e *Engine) UpdateSiteConfig(doc *document.Document, site document.SiteConfig) {
	if doc == nil {
		return
	}
	doc.Site = site
}

// AddSection appends a section of the given kind to the page, seeded with the
// registry defaults for that kind. Returns the new section, or nil when the
// page does not exist.
func (e *Engine) AddSection(doc *document.Document, pageSlug, kind string) *document.Section {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		e.editLog(doc, pageSlug, "").Debug("add section skipped: empty kind")
		return nil
	}
	page := e.findPage(doc, pageSlug, "add section")
	if page == nil {
		return nil
	}

	var data map[string]any
	if e.defaults != nil {
		data = e.defaults.Defaults(kind)
	}
	if data == nil {
		data = map[string]any{}
	}

	section := &document.Section{
		ID:    e.newID(),
		Kind:  kind,
		Order: len(page.Sections),
		Data:  data,
	}
	page.Sections = append(page.Sections, section)
	document.NormalizeSectionOrder(page)
	return section
}

// UpdateSectionField writes a value into the section's data at the given
// path, creating intermediate containers when absent. Nested arrays of
// objects are addressable via integer segments.
func (e *Engine) UpdateSectionField(doc *document.Document, pageSlug, sectionID string, path []any, value any) {
	section := e.findSection(doc, pageSlug, sectionID, "update section field")
	if section == nil {
		return
	}
	updated, err := setPath(section.Data, path, value)
	if err != nil {
		e.editLog(doc, pageSlug, sectionID).Warn("update section field failed", "error", err)
		return
	}
	section.Data = updated
}

// DeleteSection removes the section and renormalizes order.
func (e *Engine) DeleteSection(doc *document.Document, pageSlug, sectionID string) {
	page := e.findPage(doc, pageSlug, "delete section")
	if page == nil {
		return
	}
	for i, section := range page.Sections {
		if section != nil && section.ID == sectionID {
			page.Sections = append(page.Sections[:i], page.Sections[i+1:]...)
			document.NormalizeSectionOrder(page)
			return
		}
	}
	e.editLog(doc, pageSlug, sectionID).Debug("delete section skipped: section not found")
}

// MoveSection swaps the section with its neighbour in the given direction and
// renormalizes order. Moving the first section up or the last down is a
// no-op that leaves every Order value untouched.
func (e *Engine) MoveSection(doc *document.Document, pageSlug, sectionID string, direction Direction) {
	page := e.findPage(doc, pageSlug, "move section")
	if page == nil {
		return
	}

	idx := -1
	for i, section := range page.Sections {
		if section != nil && section.ID == sectionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.editLog(doc, pageSlug, sectionID).Debug("move section skipped: section not found")
		return
	}

	switch direction {
	case MoveUp:
		if idx == 0 {
			return
		}
		page.Sections[idx-1], page.Sections[idx] = page.Sections[idx], page.Sections[idx-1]
	case MoveDown:
		if idx == len(page.Sections)-1 {
			return
		}
		page.Sections[idx], page.Sections[idx+1] = page.Sections[idx+1], page.Sections[idx]
	default:
		e.editLog(doc, pageSlug, sectionID).Debug("move section skipped: unknown direction", "direction", string(direction))
		return
	}
	document.NormalizeSectionOrder(page)
}

// AddArrayItem appends a template item to a list-valued data field, creating
// the list when absent. Used uniformly by every kind-specific editor so new
// kinds need no bespoke array-mutation code.
func (e *Engine) AddArrayItem(doc *document.Document, pageSlug, sectionID, key string, template any) {
	section := e.findSection(doc, pageSlug, sectionID, "add array item")
	if section == nil {
		return
	}
	if section.Data == nil {
		section.Data = map[string]any{}
	}
	list, _ := section.Data[key].([]any)
	section.Data[key] = append(list, template)
}

// RemoveArrayItem deletes the item at index from a list-valued data field.
// Out-of-range indices and non-list values are logged no-ops.
func (e *Engine) RemoveArrayItem(doc *document.Document, pageSlug, sectionID, key string, index int) {
	section := e.findSection(doc, pageSlug, sectionID, "remove array item")
	if section == nil {
		return
	}
	list, ok := section.Data[key].([]any)
	if !ok || index < 0 || index >= len(list) {
		e.editLog(doc, pageSlug, sectionID).Debug("remove array item skipped: index out of range", "key", key, "index", index)
		return
	}
	section.Data[key] = append(list[:index], list[index+1:]...)
}

func (e *Engine) findPage(doc *document.Document, pageSlug, op string) *document.Page {
	if doc == nil {
		e.editLog(nil, pageSlug, "").Debug(op + " skipped: nil document")
		return nil
	}
	page := doc.FindPage(pageSlug)
	if page == nil {
		e.editLog(doc, pageSlug, "").Debug(op + " skipped: page not found")
	}
	return page
}

func (e *Engine) findSection(doc *document.Document, pageSlug, sectionID, op string) *document.Section {
	page := e.findPage(doc, pageSlug, op)
	if page == nil {
		return nil
	}
	section := page.FindSection(sectionID)
	if section == nil {
		e.editLog(doc, pageSlug, sectionID).Debug(op + " skipped: section not found")
	}
	return section
}

// editLog scopes the diagnostics logger to the mutation target.
func (e *Engine) editLog(doc *document.Document, pageSlug, sectionID string) interfaces.Logger {
	projectID := ""
	if doc != nil && doc.ProjectID != uuid.Nil {
		projectID = doc.ProjectID.String()
	}
	return logging.WithEditContext(e.logger, projectID, pageSlug, sectionID)
}
