//go:build unit || e2e

package testutil

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// applies a field mutation to the idx-th element of a nested list, e.g. "rules"
func Nested(listKey string, idx int, mut func(m map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		list, ok := m[listKey].([]any)
		if !ok || idx >= len(list) {
			return
		}
		if item, ok := list[idx].(map[string]any); ok {
			mut(item)
		}
	}
}
