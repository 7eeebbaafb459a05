package document

import internaldocument "github.com/draftforge/go-sitegen/internal/document"

// PayloadVersion is the current persisted page payload version.
const PayloadVersion = internaldocument.PayloadVersion

// Status represents page lifecycle states.
type Status = internaldocument.Status

const (
	// StatusDraft indicates a page still under preparation.
	StatusDraft = internaldocument.StatusDraft
	// StatusPublished identifies a page available to visitors.
	StatusPublished = internaldocument.StatusPublished
)

// Document is the complete website definition for one project.
type Document = internaldocument.Document

// SiteConfig carries site-wide identity.
type SiteConfig = internaldocument.SiteConfig

// ColorPalette holds the site color scheme.
type ColorPalette = internaldocument.ColorPalette

// ContactInfo holds site-wide contact details.
type ContactInfo = internaldocument.ContactInfo

// Page is one page of the website.
type Page = internaldocument.Page

// HeroBlock is the optional page header block.
type HeroBlock = internaldocument.HeroBlock

// SEOMeta carries per-page search metadata.
type SEOMeta = internaldocument.SEOMeta

// Section is one content block within a page.
type Section = internaldocument.Section

// NavigationConfig carries editor overrides for menu derivation.
type NavigationConfig = internaldocument.NavigationConfig

// PagePayload is the persisted JSON shape for a page's sections.
type PagePayload = internaldocument.PagePayload

// DuplicateSlugError reports a slug collision within a document.
type DuplicateSlugError = internaldocument.DuplicateSlugError

var (
	ErrDocumentRequired = internaldocument.ErrDocumentRequired
	ErrSlugRequired     = internaldocument.ErrSlugRequired
	ErrSlugInvalid      = internaldocument.ErrSlugInvalid
	ErrDuplicateSlug    = internaldocument.ErrDuplicateSlug
	ErrPayloadEmpty     = internaldocument.ErrPayloadEmpty
	ErrPayloadVersion   = internaldocument.ErrPayloadVersion
)

// New returns an empty document for a project.
var New = internaldocument.New

// NormalizeSlug canonicalizes a page slug.
var NormalizeSlug = internaldocument.NormalizeSlug

// NormalizeSectionOrder re-derives the dense section order of a page.
var NormalizeSectionOrder = internaldocument.NormalizeSectionOrder

// Clone deep-copies a document.
var Clone = internaldocument.Clone

// EncodePagePayload serializes a page's sections to the persisted string form.
var EncodePagePayload = internaldocument.EncodePagePayload

// DecodePagePayload parses a persisted payload string back into sections.
var DecodePagePayload = internaldocument.DecodePagePayload
