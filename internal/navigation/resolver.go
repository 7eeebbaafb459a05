package navigation

import (
	"sort"
	"strings"

	"github.com/draftforge/go-sitegen/internal/document"
)

// Item is one entry of the resolved navigation menu.
type Item struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// commonSlugLabels maps well-known page slugs to their conventional menu
// labels, used when neither the page nor the config supplies one.
var commonSlugLabels = map[string]string{
	"home":         "Home",
	"about":        "About Us",
	"services":     "Services",
	"products":     "Products",
	"pricing":      "Pricing",
	"portfolio":    "Portfolio",
	"team":         "Team",
	"testimonials": "Testimonials",
	"faq":          "FAQ",
	"blog":         "Blog",
	"contact":      "Contact",
}

// Resolve derives the navigation menu from the document's pages plus an
// optional navigation config. Hidden pages are removed; pages named in
// PageOrder are placed first in the listed order, unlisted pages keep their
// original relative order behind them.
func Resolve(pages []*document.Page, cfg *document.NavigationConfig) []Item {
	visible := make([]*document.Page, 0, len(pages))
	hidden := hiddenSet(cfg)
	for _, page := range pages {
		if page == nil || strings.TrimSpace(page.Slug) == "" {
			continue
		}
		if _, ok := hidden[page.Slug]; ok {
			continue
		}
		visible = append(visible, page)
	}

	if cfg != nil && len(cfg.PageOrder) > 0 {
		rank := make(map[string]int, len(cfg.PageOrder))
		for i, slug := range cfg.PageOrder {
			if _, ok := rank[slug]; !ok {
				rank[slug] = i
			}
		}
		sort.SliceStable(visible, func(i, j int) bool {
			ri, iListed := rank[visible[i].Slug]
			rj, jListed := rank[visible[j].Slug]
			switch {
			case iListed && jListed:
				return ri < rj
			case iListed:
				return true
			case jListed:
				return false
			default:
				// Unlisted pages keep original relative order; the stable
				// sort handles the tie-break.
				return false
			}
		})
	}

	items := make([]Item, 0, len(visible))
	for _, page := range visible {
		items = append(items, Item{
			Slug:  page.Slug,
			Label: resolveLabel(page, cfg),
			Icon:  resolveIcon(page.Slug, cfg),
		})
	}
	return items
}

// resolveLabel applies the label precedence chain: editor override, then the
// page's own nav label, then the config label, then the common-slug table,
// then a title-cased slug.
func resolveLabel(page *document.Page, cfg *document.NavigationConfig) string {
	if label := strings.TrimSpace(page.CustomNavLabel); label != "" {
		return label
	}
	if label := strings.TrimSpace(page.NavLabel); label != "" {
		return label
	}
	if cfg != nil {
		if label := strings.TrimSpace(cfg.Labels[page.Slug]); label != "" {
			return label
		}
	}
	if label, ok := commonSlugLabels[page.Slug]; ok {
		return label
	}
	return titleCaseSlug(page.Slug)
}

// resolveIcon looks up the symbolic icon name; absence means no icon.
func resolveIcon(slug string, cfg *document.NavigationConfig) string {
	if cfg == nil {
		return ""
	}
	return strings.TrimSpace(cfg.Icons[slug])
}

func hiddenSet(cfg *document.NavigationConfig) map[string]struct{} {
	if cfg == nil || len(cfg.HiddenPages) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(cfg.HiddenPages))
	for _, slug := range cfg.HiddenPages {
		if trimmed := strings.TrimSpace(slug); trimmed != "" {
			out[trimmed] = struct{}{}
		}
	}
	return out
}

func titleCaseSlug(slug string) string {
	parts := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
