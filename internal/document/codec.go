package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrPayloadEmpty   = errors.New("document: page payload is empty")
	ErrPayloadVersion = errors.New("document: unsupported page payload version")
)

// PagePayload is the on-disk JSON shape for one page's sections. It is stored
// as an opaque serialized string next to the page metadata columns.
type PagePayload struct {
	Sections []*Section `json:"sections"`
	Version  string     `json:"version"`
}

// EncodePagePayload serializes a page's sections into the persisted payload
// string. Sections are emitted in Order so decoding reproduces render order
// even if the in-memory slice drifted.
func EncodePagePayload(page *Page) (string, error) {
	if page == nil {
		return "", ErrDocumentRequired
	}

	sections := make([]*Section, 0, len(page.Sections))
	for _, section := range page.Sections {
		if section == nil {
			continue
		}
		sections = append(sections, CloneSection(section))
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	payload := PagePayload{
		Sections: sections,
		Version:  PayloadVersion,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("document: encode page payload: %w", err)
	}
	return string(raw), nil
}

// DecodePagePayload parses a persisted payload string back into sections.
// The section order invariant is re-derived after decoding so documents
// written by older editors still come back dense.
func DecodePagePayload(raw string) ([]*Section, error) {
	if raw == "" {
		return nil, ErrPayloadEmpty
	}

	var payload PagePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("document: decode page payload: %w", err)
	}
	if payload.Version != PayloadVersion {
		return nil, fmt.Errorf("%w: %q", ErrPayloadVersion, payload.Version)
	}

	page := &Page{Sections: payload.Sections}
	NormalizeSectionOrder(page)
	return page.Sections, nil
}
