// Package memory manages the durable per-user learning profile: the pure
// merge engine that reconciles partial updates, and the persistence system
// that applies merges against stored profiles.
package memory

// Profile keys with dedicated merge semantics. Any other key is merged by
// shallow overwrite.
const (
	KeyTopicsLearned = "topics_learned"
	KeyWeakAreas     = "weak_areas"
	KeyProgress      = "progress"
)

// Profile is the accumulated per-user learning state. It is an open JSON
// object: the three known keys carry union/merge semantics, everything else
// is free-form.
type Profile map[string]any

// NewProfile returns an empty profile with the known fields initialized.
func NewProfile() Profile {
	return Profile{
		KeyTopicsLearned: []string{},
		KeyWeakAreas:     []string{},
		KeyProgress:      map[string]any{},
	}
}

// TopicsLearned returns the learned topic set as a string slice.
func (p Profile) TopicsLearned() []string {
	return stringSlice(p[KeyTopicsLearned])
}

// WeakAreas returns the weak area set as a string slice.
func (p Profile) WeakAreas() []string {
	return stringSlice(p[KeyWeakAreas])
}

// Progress returns the nested progress map, or an empty map when unset.
func (p Profile) Progress() map[string]any {
	if m, ok := p[KeyProgress].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
