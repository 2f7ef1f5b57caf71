package memory

import (
	"fmt"
	"maps"
)

// Merge reconciles a partial update into a stored profile and returns the new
// profile. Neither input is mutated. Per key:
//
//   - topics_learned / weak_areas with a sequence value: set union with the
//     stored sequence (duplicates removed, order not guaranteed)
//   - progress with a map value: merged one level into the stored progress
//     map (sibling keys preserved, overlapping keys overwritten)
//   - anything else: shallow overwrite
func Merge(current Profile, update map[string]any) Profile {
	merged := make(Profile, len(current)+len(update))
	maps.Copy(merged, current)

	for key, value := range update {
		switch {
		case key == KeyTopicsLearned || key == KeyWeakAreas:
			if incoming, ok := sequence(value); ok {
				merged[key] = union(stringSlice(merged[key]), incoming)
				continue
			}
			merged[key] = value

		case key == KeyProgress:
			if incoming, ok := value.(map[string]any); ok {
				progress := make(map[string]any)
				if existing, ok := merged[key].(map[string]any); ok {
					maps.Copy(progress, existing)
				}
				maps.Copy(progress, incoming)
				merged[key] = progress
				continue
			}
			merged[key] = value

		default:
			merged[key] = value
		}
	}

	return merged
}

// sequence normalizes a JSON-decoded list value into a string slice. It
// accepts both []string and the []any produced by encoding/json.
func sequence(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = asString(item)
		}
		return result, true
	default:
		return nil, false
	}
}

func union(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing)+len(incoming))
	result := make([]string, 0, len(existing)+len(incoming))
	for _, item := range existing {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	for _, item := range incoming {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

func stringSlice(value any) []string {
	if items, ok := sequence(value); ok {
		return items
	}
	return []string{}
}

func asString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
