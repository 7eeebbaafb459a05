package render

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/draftforge/go-sitegen/internal/document"
	"github.com/draftforge/go-sitegen/internal/logging"
	"github.com/draftforge/go-sitegen/pkg/interfaces"
)

// Known section kinds. The set is open: the generator may introduce new kinds
// before the renderer learns about them, so lookups always fall back to a
// neutral placeholder instead of failing.
const (
	KindHero         = "hero"
	KindText         = "text"
	KindFeatures     = "features"
	KindServices     = "services"
	KindTestimonials = "testimonials"
	KindStats        = "stats"
	KindProcess      = "process"
	KindFAQ          = "faq"
	KindPricing      = "pricing"
	KindProducts     = "products"
	KindCTA          = "cta"
	KindImage        = "image"
	KindTeam         = "team"
	KindPortfolio    = "portfolio"
)

// Output is the visual result of rendering one section.
type Output struct {
	Kind string
	HTML string
}

// Renderer turns a section's loosely typed data into visual output. Renderers
// must tolerate every field being absent and must not fail on malformed types;
// values are coerced or skipped.
type Renderer interface {
	Render(section *document.Section, ctx Context) Output
}

// RendererFunc adapts a plain function to the Renderer contract.
type RendererFunc func(section *document.Section, ctx Context) Output

func (f RendererFunc) Render(section *document.Section, ctx Context) Output {
	return f(section, ctx)
}

// Entry pairs a kind's rendering strategy with the default data seeded into
// newly added sections of that kind.
type Entry struct {
	Kind     string
	Renderer Renderer
	Defaults map[string]any
}

// Registry maps section kinds to rendering strategies. New kinds are added by
// registering, never by subtyping sections.
type Registry struct {
	mu           sync.RWMutex
	entries      map[string]Entry
	fallback     Renderer
	assetBaseURL string
	logger       interfaces.Logger
}

// RegistryOption mutates the registry during construction.
type RegistryOption func(*Registry)

// WithAssetBaseURL sets the asset base applied to render contexts that do not
// carry their own. Contexts with an explicit AssetBaseURL win.
func WithAssetBaseURL(base string) RegistryOption {
	return func(r *Registry) {
		r.assetBaseURL = strings.TrimSpace(base)
	}
}

// WithLogger attaches the diagnostics logger used for fallback reports.
func WithLogger(logger interfaces.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry constructs a registry pre-populated with the built-in kinds and
// the mandatory unknown-kind fallback.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries:  make(map[string]Entry),
		fallback: RendererFunc(renderUnsupported),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	registerBuiltins(r)
	return r
}

// Register records a rendering strategy for a kind, replacing any previous
// entry. Empty kinds and nil renderers are ignored.
func (r *Registry) Register(entry Entry) {
	if r == nil {
		return
	}
	kind := strings.TrimSpace(entry.Kind)
	if kind == "" || entry.Renderer == nil {
		return
	}
	entry.Kind = kind

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]Entry)
	}
	r.entries[kind] = entry
}

// Lookup returns the entry registered for a kind.
func (r *Registry) Lookup(kind string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[strings.TrimSpace(kind)]
	return entry, ok
}

// Kinds returns every registered kind.
func (r *Registry) Kinds() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for kind := range r.entries {
		out = append(out, kind)
	}
	return out
}

// Defaults returns a copy of the default data registered for a kind. Unknown
// kinds yield an empty map so the editor can still add the section.
func (r *Registry) Defaults(kind string) map[string]any {
	entry, ok := r.Lookup(kind)
	if !ok || entry.Defaults == nil {
		return map[string]any{}
	}
	return document.CloneData(entry.Defaults)
}

// Render dispatches on the section's kind. Unregistered kinds render the
// neutral unsupported-preview placeholder rather than failing; nil sections
// render empty output. Contexts without an asset base inherit the registry's
// configured one.
func (r *Registry) Render(section *document.Section, ctx Context) Output {
	if section == nil {
		return Output{}
	}
	if ctx.AssetBaseURL == "" {
		ctx.AssetBaseURL = r.assetBaseURL
	}
	entry, ok := r.Lookup(section.Kind)
	if !ok {
		r.logger.Debug("render fallback: kind not registered", "kind", section.Kind)
		return r.fallback.Render(section, ctx)
	}
	return entry.Renderer.Render(section, ctx)
}

// RenderPage renders every section of a page in order.
func (r *Registry) RenderPage(page *document.Page, ctx Context) []Output {
	if page == nil {
		return nil
	}
	ctx.Page = page
	out := make([]Output, 0, len(page.Sections))
	for _, section := range page.Sections {
		if section == nil {
			continue
		}
		out = append(out, r.Render(section, ctx))
	}
	return out
}

func renderUnsupported(section *document.Section, _ Context) Output {
	return Output{
		Kind: section.Kind,
		HTML: fmt.Sprintf(
			`<div class="section section--unsupported" data-kind="%s"><p>This block type is not supported yet.</p></div>`,
			html.EscapeString(section.Kind),
		),
	}
}
