package document

import (
	"time"

	"github.com/google/uuid"
)

// PayloadVersion identifies the serialized page payload shape understood by
// this engine. Stored alongside every page so future revisions can migrate.
const PayloadVersion = "1.0"

// Status represents page lifecycle states.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Document is the full in-memory representation of one generated website:
// site-wide identity plus an ordered list of pages. A Document is created
// empty when a template is chosen, populated by the generation pipeline, and
// mutated incrementally through the editor engine afterwards.
type Document struct {
	ProjectID  uuid.UUID         `json:"project_id"`
	Site       SiteConfig        `json:"site"`
	Pages      []*Page           `json:"pages"`
	Navigation *NavigationConfig `json:"navigation,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at,omitempty"`
}

// SiteConfig carries site-wide identity. It is owned by the Document, mutated
// only through the editor engine, and treated as an immutable snapshot during
// any single render pass.
type SiteConfig struct {
	Name    string       `json:"name"`
	Tagline string       `json:"tagline,omitempty"`
	Colors  ColorPalette `json:"colors"`
	Contact ContactInfo  `json:"contact"`
}

// ColorPalette holds the opaque color configuration threaded through rendering.
type ColorPalette struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty"`
}

// ContactInfo groups the contact block surfaced by contact-style sections.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Page is one website page: a unique URL-safe slug, metadata, an optional
// hero block, and an order-significant list of sections.
type Page struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	NavLabel    string     `json:"nav_label,omitempty"`
	// CustomNavLabel is an editor-supplied override that wins over both the
	// generator-provided NavLabel and any navigation config label.
	CustomNavLabel string     `json:"custom_nav_label,omitempty"`
	Hero           *HeroBlock `json:"hero,omitempty"`
	Sections       []*Section `json:"sections"`
	SEO            SEOMeta    `json:"seo,omitempty"`
	Status         Status     `json:"status,omitempty"`
}

// HeroBlock is the optional above-the-fold block rendered before sections.
type HeroBlock struct {
	Headline    string `json:"headline,omitempty"`
	Subheadline string `json:"subheadline,omitempty"`
	Image       string `json:"image,omitempty"`
	CTALabel    string `json:"cta_label,omitempty"`
	CTAHref     string `json:"cta_href,omitempty"`
}

// SEOMeta carries the per-page metadata persisted next to the page payload.
type SEOMeta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Section is one renderable unit on a page. Kind selects the rendering and
// editing strategy; Data's shape is kind-dependent and only loosely validated
// because the generator's output format is expected to drift.
type Section struct {
	ID    string         `json:"id"`
	Kind  string         `json:"kind"`
	Order int            `json:"order"`
	Data  map[string]any `json:"data"`
}

// NavigationConfig customizes the derived navigation menu. It is consumed
// only by the navigation resolver and never mutated by the renderer.
type NavigationConfig struct {
	HiddenPages []string          `json:"hidden_pages,omitempty"`
	PageOrder   []string          `json:"page_order,omitempty"`
	Icons       map[string]string `json:"icons,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// New returns an empty Document for a project. Pages arrive later from the
// generation pipeline or the editor.
func New(projectID uuid.UUID) *Document {
	return &Document{
		ProjectID: projectID,
		Pages:     []*Page{},
	}
}

// FindPage returns the page with the given slug, or nil when absent.
func (d *Document) FindPage(slug string) *Page {
	if d == nil {
		return nil
	}
	for _, page := range d.Pages {
		if page != nil && page.Slug == slug {
			return page
		}
	}
	return nil
}

// FindSection returns the section with the given id, or nil when absent.
func (p *Page) FindSection(id string) *Section {
	if p == nil {
		return nil
	}
	for _, section := range p.Sections {
		if section != nil && section.ID == id {
			return section
		}
	}
	return nil
}
