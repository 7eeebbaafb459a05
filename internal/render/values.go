package render

import (
	"fmt"
	"strconv"
	"strings"
)

// The helpers in this file implement the loose access pattern mandated for
// section data: presence checks and coercion, never rejection. Generator
// output drifts, so a missing or oddly typed field renders a default instead
// of failing the section.

func stringField(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	return coerceString(data[key])
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return ""
	}
}

// ListItem is the normalized display form shared by every list-valued field:
// feature bullets, service entries, stat rows, and so on.
type ListItem struct {
	Text string
	Icon string
}

// listField normalizes a list-valued data field. Items may be plain strings
// or {text, icon} objects; both collapse into ListItem. Non-list values and
// unrecognized items are skipped.
func listField(data map[string]any, key string) []ListItem {
	if data == nil {
		return nil
	}
	raw, ok := data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]ListItem, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				out = append(out, ListItem{Text: trimmed})
			}
		case map[string]any:
			entry := ListItem{
				Text: coerceString(v["text"]),
				Icon: coerceString(v["icon"]),
			}
			if entry.Text == "" {
				entry.Text = coerceString(v["title"])
			}
			if entry.Text != "" {
				out = append(out, entry)
			}
		}
	}
	return out
}

// objectListField returns a list-valued field as maps, wrapping plain strings
// into {text} entries so kind renderers can address named keys uniformly.
func objectListField(data map[string]any, key string) []map[string]any {
	if data == nil {
		return nil
	}
	raw, ok := data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case map[string]any:
			out = append(out, v)
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				out = append(out, map[string]any{"text": trimmed})
			}
		}
	}
	return out
}
