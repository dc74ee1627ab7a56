package schema

import "encoding/json"

// Raw persisted data is structurally untrusted: it may come from any older
// schema version, or be hand-edited. All reads go through the loose helpers
// below, which substitute zero values instead of failing, so migration can
// honor its never-fails contract field by field.

// parseObject decodes raw bytes into a loose map, returning an empty map for
// anything that is not a JSON object.
func parseObject(raw []byte) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func stringField(m map[string]any, key, def string) string {
	if s, ok := asString(m[key]); ok {
		return s
	}
	return def
}

func boolField(m map[string]any, key string, def bool) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}

// stringList keeps only string elements of a JSON array. A non-array or a
// missing key yields an empty list.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := asString(it); ok {
			out = append(out, s)
		}
	}
	return out
}

// objectList keeps only object elements of a JSON array.
func objectList(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := asObject(it); ok {
			out = append(out, m)
		}
	}
	return out
}

// isStringArray reports whether v is a JSON array whose elements are all
// strings. Used to distinguish the legacy flat skill shape from the grouped
// one.
func isStringArray(v any) bool {
	items, ok := v.([]any)
	if !ok {
		return false
	}
	for _, it := range items {
		if _, ok := asString(it); !ok {
			return false
		}
	}
	return true
}

func intPointer(v any) *int {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}
