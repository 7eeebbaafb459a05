package render

import (
	"strings"

	"github.com/draftforge/go-sitegen/internal/document"
)

// Mode distinguishes the published site render from the editor preview.
type Mode string

const (
	// ModeLive renders the published site: empty fields are omitted.
	ModeLive Mode = "live"
	// ModePreview renders inside the editor: empty fields are replaced with
	// placeholder copy so authors see the block's shape before filling it in.
	ModePreview Mode = "preview"
)

// Context carries the immutable inputs for a single render pass: the resolved
// site configuration, the enclosing page, the render mode, and the external
// storage convention used to resolve image references.
type Context struct {
	Site         document.SiteConfig
	Page         *document.Page
	Mode         Mode
	AssetBaseURL string
}

// Preview reports whether placeholder substitution applies.
func (c Context) Preview() bool {
	return c.Mode == ModePreview
}

// Text returns the trimmed value, or the placeholder when the value is empty
// and the pass is a preview. Live renders return "" for empty values so the
// caller can skip the element entirely.
func (c Context) Text(value, placeholder string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed != "" {
		return trimmed
	}
	if c.Preview() {
		return placeholder
	}
	return ""
}

// ImageURL resolves an image reference that may be either a fully qualified
// URL or an internal storage key. Storage keys are joined onto the configured
// asset base URL; this is an external-storage convention, not business logic.
func (c Context) ImageURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	base := strings.TrimRight(c.AssetBaseURL, "/")
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	if base == "" {
		return ref
	}
	return base + ref
}
