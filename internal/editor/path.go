package editor

import "fmt"

// pathSegment normalizes one step of a data path. Strings address map keys,
// integers address slice indices. JSON-decoded numbers arrive as float64 and
// are accepted for convenience.
func pathSegment(raw any) (key string, index int, isIndex bool, err error) {
	switch v := raw.(type) {
	case string:
		return v, 0, false, nil
	case int:
		if v < 0 {
			return "", 0, false, fmt.Errorf("editor: negative path index %d", v)
		}
		return "", v, true, nil
	case float64:
		idx := int(v)
		if idx < 0 || float64(idx) != v {
			return "", 0, false, fmt.Errorf("editor: invalid path index %v", v)
		}
		return "", idx, true, nil
	default:
		return "", 0, false, fmt.Errorf("editor: unsupported path segment %T", raw)
	}
}

// setPath writes value at the position described by path, creating
// intermediate maps and growing intermediate slices as needed rather than
// failing. The root map is returned so callers can install a freshly created
// one.
func setPath(root map[string]any, path []any, value any) (map[string]any, error) {
	if len(path) == 0 {
		return root, fmt.Errorf("editor: empty field path")
	}
	if root == nil {
		root = map[string]any{}
	}
	updated, err := setValue(root, path, value)
	if err != nil {
		return root, err
	}
	return updated.(map[string]any), nil
}

// setValue recursively installs value under path, returning the (possibly
// reallocated) container so callers can write it back into their parent slot.
func setValue(container any, path []any, value any) (any, error) {
	key, index, isIndex, err := pathSegment(path[0])
	if err != nil {
		return container, err
	}

	if isIndex {
		slice, ok := container.([]any)
		if !ok {
			slice = []any{}
		}
		for len(slice) <= index {
			slice = append(slice, nil)
		}
		if len(path) == 1 {
			slice[index] = value
			return slice, nil
		}
		child, err := setValue(prepareChild(slice[index], path[1]), path[1:], value)
		if err != nil {
			return slice, err
		}
		slice[index] = child
		return slice, nil
	}

	m, ok := container.(map[string]any)
	if !ok {
		m = map[string]any{}
	}
	if len(path) == 1 {
		m[key] = value
		return m, nil
	}
	child, err := setValue(prepareChild(m[key], path[1]), path[1:], value)
	if err != nil {
		return m, err
	}
	m[key] = child
	return m, nil
}

// prepareChild shapes an empty or mismatched slot into the container the next
// segment expects: a slice for numeric segments, a map otherwise.
func prepareChild(current any, nextSeg any) any {
	switch nextSeg.(type) {
	case int, float64:
		if slice, ok := current.([]any); ok {
			return slice
		}
		return []any{}
	default:
		if m, ok := current.(map[string]any); ok {
			return m
		}
		return map[string]any{}
	}
}
