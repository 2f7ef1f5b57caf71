package memory_test

import (
	"slices"
	"testing"

	"github.com/tutormesh/tutormesh/internal/memory"
)

func TestMergeTopicSetUnion(t *testing.T) {
	current := memory.Profile{
		memory.KeyTopicsLearned: []string{"algebra", "geometry"},
	}
	update := map[string]any{
		memory.KeyTopicsLearned: []any{"geometry", "calculus"},
	}

	merged := memory.Merge(current, update)

	got := merged.TopicsLearned()
	slices.Sort(got)

	want := []string{"algebra", "calculus", "geometry"}
	if !slices.Equal(got, want) {
		t.Errorf("topics_learned = %v, want %v", got, want)
	}
}

func TestMergeWeakAreasDeduplicated(t *testing.T) {
	current := memory.Profile{
		memory.KeyWeakAreas: []string{"fractions"},
	}
	update := map[string]any{
		memory.KeyWeakAreas: []any{"fractions", "fractions", "ratios"},
	}

	merged := memory.Merge(current, update)

	got := merged.WeakAreas()
	slices.Sort(got)

	want := []string{"fractions", "ratios"}
	if !slices.Equal(got, want) {
		t.Errorf("weak_areas = %v, want %v", got, want)
	}
}

func TestMergeProgressPreservesSiblings(t *testing.T) {
	current := memory.Profile{
		memory.KeyProgress: map[string]any{
			"algebra":  0.5,
			"geometry": 0.8,
		},
	}
	update := map[string]any{
		memory.KeyProgress: map[string]any{
			"algebra":  0.7,
			"calculus": 0.1,
		},
	}

	merged := memory.Merge(current, update)
	progress := merged.Progress()

	if got, want := progress["algebra"], 0.7; got != want {
		t.Errorf("progress[algebra] = %v, want %v", got, want)
	}
	if got, want := progress["geometry"], 0.8; got != want {
		t.Errorf("progress[geometry] = %v, want %v", got, want)
	}
	if got, want := progress["calculus"], 0.1; got != want {
		t.Errorf("progress[calculus] = %v, want %v", got, want)
	}
}

func TestMergeUnknownKeyOverwrites(t *testing.T) {
	current := memory.Profile{"learning_style": "visual"}
	update := map[string]any{"learning_style": "auditory"}

	merged := memory.Merge(current, update)

	if got, want := merged["learning_style"], "auditory"; got != want {
		t.Errorf("learning_style = %v, want %v", got, want)
	}
}

func TestMergeNonSequenceValueOverwritesTopicKey(t *testing.T) {
	current := memory.Profile{
		memory.KeyTopicsLearned: []string{"algebra"},
	}
	update := map[string]any{
		memory.KeyTopicsLearned: "not a list",
	}

	merged := memory.Merge(current, update)

	if got, want := merged[memory.KeyTopicsLearned], "not a list"; got != want {
		t.Errorf("topics_learned = %v, want %v", got, want)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	current := memory.Profile{
		memory.KeyProgress: map[string]any{"algebra": 0.5},
	}
	update := map[string]any{
		memory.KeyProgress: map[string]any{"algebra": 0.9},
	}

	memory.Merge(current, update)

	progress := current[memory.KeyProgress].(map[string]any)
	if got, want := progress["algebra"], 0.5; got != want {
		t.Errorf("current progress[algebra] = %v, want %v", got, want)
	}
}

func TestMergeIntoEmptyProfile(t *testing.T) {
	update := map[string]any{
		memory.KeyTopicsLearned: []any{"physics"},
		"preferred_mode":        "visual",
	}

	merged := memory.Merge(memory.NewProfile(), update)

	if got, want := merged.TopicsLearned(), []string{"physics"}; !slices.Equal(got, want) {
		t.Errorf("topics_learned = %v, want %v", got, want)
	}
	if got, want := merged["preferred_mode"], "visual"; got != want {
		t.Errorf("preferred_mode = %v, want %v", got, want)
	}
}
