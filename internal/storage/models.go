package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/draftforge/go-sitegen/internal/document"
)

// SiteRecord is the per-project document row. Site identity and navigation
// are stored as JSON blobs; pages live in their own table.
type SiteRecord struct {
	bun.BaseModel `bun:"table:site_documents,alias:sd"`

	ID          uuid.UUID  `bun:"id,pk,notnull" json:"id"`
	ProjectID   uuid.UUID  `bun:"project_id,notnull,unique" json:"project_id"`
	Site        string     `bun:"site,notnull" json:"site"`
	Navigation  string     `bun:"navigation,nullzero" json:"navigation,omitempty"`
	Published   bool       `bun:"published,notnull,default:false" json:"published"`
	PublishedAt *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull" json:"updated_at"`
}

// PageRecord is one page of a stored document. Section content is an opaque
// versioned payload string; page metadata stays in queryable columns.
type PageRecord struct {
	bun.BaseModel `bun:"table:site_pages,alias:sp"`

	ID             uuid.UUID `bun:"id,pk,notnull" json:"id"`
	ProjectID      uuid.UUID `bun:"project_id,notnull" json:"project_id"`
	Slug           string    `bun:"slug,notnull" json:"slug"`
	Title          string    `bun:"title,nullzero" json:"title,omitempty"`
	Description    string    `bun:"description,nullzero" json:"description,omitempty"`
	NavLabel       string    `bun:"nav_label,nullzero" json:"nav_label,omitempty"`
	CustomNavLabel string    `bun:"custom_nav_label,nullzero" json:"custom_nav_label,omitempty"`
	Hero           string    `bun:"hero,nullzero" json:"hero,omitempty"`
	SEOTitle       string    `bun:"seo_title,nullzero" json:"seo_title,omitempty"`
	SEODescription string    `bun:"seo_description,nullzero" json:"seo_description,omitempty"`
	Status         string    `bun:"status,notnull,default:'draft'" json:"status"`
	Position       int       `bun:"position,notnull,default:0" json:"position"`
	Payload        string    `bun:"payload,notnull" json:"payload"`
	CreatedAt      time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// encodeRecords flattens a document into its site row and page rows.
func encodeRecords(doc *document.Document, now time.Time) (*SiteRecord, []*PageRecord, error) {
	site, err := json.Marshal(doc.Site)
	if err != nil {
		return nil, nil, fmt.Errorf("encode site config: %w", err)
	}

	record := &SiteRecord{
		ID:        uuid.New(),
		ProjectID: doc.ProjectID,
		Site:      string(site),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if doc.Navigation != nil {
		nav, err := json.Marshal(doc.Navigation)
		if err != nil {
			return nil, nil, fmt.Errorf("encode navigation config: %w", err)
		}
		record.Navigation = string(nav)
	}

	pages := make([]*PageRecord, 0, len(doc.Pages))
	for i, page := range doc.Pages {
		if page == nil {
			continue
		}
		payload, err := document.EncodePagePayload(page)
		if err != nil {
			return nil, nil, fmt.Errorf("encode page %q: %w", page.Slug, err)
		}
		row := &PageRecord{
			ID:             uuid.New(),
			ProjectID:      doc.ProjectID,
			Slug:           page.Slug,
			Title:          page.Title,
			Description:    page.Description,
			NavLabel:       page.NavLabel,
			CustomNavLabel: page.CustomNavLabel,
			SEOTitle:       page.SEO.Title,
			SEODescription: page.SEO.Description,
			Status:         string(page.Status),
			Position:       i,
			Payload:        payload,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if row.Status == "" {
			row.Status = string(document.StatusDraft)
		}
		if page.Hero != nil {
			hero, err := json.Marshal(page.Hero)
			if err != nil {
				return nil, nil, fmt.Errorf("encode page %q hero: %w", page.Slug, err)
			}
			row.Hero = string(hero)
		}
		pages = append(pages, row)
	}
	return record, pages, nil
}

// decodeRecords reassembles a document from its stored rows. Page rows are
// expected in position order.
func decodeRecords(site *SiteRecord, pages []*PageRecord) (*document.Document, error) {
	doc := &document.Document{
		ProjectID: site.ProjectID,
		Pages:     make([]*document.Page, 0, len(pages)),
		UpdatedAt: site.UpdatedAt,
	}
	if site.Site != "" {
		if err := json.Unmarshal([]byte(site.Site), &doc.Site); err != nil {
			return nil, fmt.Errorf("decode site config: %w", err)
		}
	}
	if site.Navigation != "" {
		nav := &document.NavigationConfig{}
		if err := json.Unmarshal([]byte(site.Navigation), nav); err != nil {
			return nil, fmt.Errorf("decode navigation config: %w", err)
		}
		doc.Navigation = nav
	}

	for _, row := range pages {
		if row == nil {
			continue
		}
		page := &document.Page{
			Slug:           row.Slug,
			Title:          row.Title,
			Description:    row.Description,
			NavLabel:       row.NavLabel,
			CustomNavLabel: row.CustomNavLabel,
			SEO: document.SEOMeta{
				Title:       row.SEOTitle,
				Description: row.SEODescription,
			},
			Status: document.Status(row.Status),
		}
		if row.Hero != "" {
			hero := &document.HeroBlock{}
			if err := json.Unmarshal([]byte(row.Hero), hero); err != nil {
				return nil, fmt.Errorf("decode page %q hero: %w", row.Slug, err)
			}
			page.Hero = hero
		}
		sections, err := document.DecodePagePayload(row.Payload)
		if err != nil {
			return nil, fmt.Errorf("decode page %q: %w", row.Slug, err)
		}
		page.Sections = sections
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}
