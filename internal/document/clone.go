package document

// Clone returns a deep copy of the document so callers can hand out snapshots
// without sharing mutable state with the editor.
func Clone(doc *Document) *Document {
	if doc == nil {
		return nil
	}
	copied := *doc
	copied.Pages = ClonePages(doc.Pages)
	copied.Navigation = cloneNavigation(doc.Navigation)
	return &copied
}

// ClonePages deep copies a page list, preserving order.
func ClonePages(pages []*Page) []*Page {
	if pages == nil {
		return nil
	}
	out := make([]*Page, 0, len(pages))
	for _, page := range pages {
		out = append(out, ClonePage(page))
	}
	return out
}

// ClonePage deep copies a single page including its sections.
func ClonePage(page *Page) *Page {
	if page == nil {
		return nil
	}
	copied := *page
	if page.Hero != nil {
		hero := *page.Hero
		copied.Hero = &hero
	}
	copied.Sections = make([]*Section, 0, len(page.Sections))
	for _, section := range page.Sections {
		copied.Sections = append(copied.Sections, CloneSection(section))
	}
	return &copied
}

// CloneSection deep copies a section including nested data containers.
func CloneSection(section *Section) *Section {
	if section == nil {
		return nil
	}
	copied := *section
	copied.Data = CloneData(section.Data)
	return &copied
}

// CloneData deep copies a section data map. Only JSON-shaped values (maps,
// slices, scalars) are traversed; anything else is shared by reference.
func CloneData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for key, value := range data {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return CloneData(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func cloneNavigation(cfg *NavigationConfig) *NavigationConfig {
	if cfg == nil {
		return nil
	}
	copied := NavigationConfig{}
	if cfg.HiddenPages != nil {
		copied.HiddenPages = append([]string{}, cfg.HiddenPages...)
	}
	if cfg.PageOrder != nil {
		copied.PageOrder = append([]string{}, cfg.PageOrder...)
	}
	if cfg.Icons != nil {
		copied.Icons = make(map[string]string, len(cfg.Icons))
		for k, v := range cfg.Icons {
			copied.Icons[k] = v
		}
	}
	if cfg.Labels != nil {
		copied.Labels = make(map[string]string, len(cfg.Labels))
		for k, v := range cfg.Labels {
			copied.Labels[k] = v
		}
	}
	return &copied
}
