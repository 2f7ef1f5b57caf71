package providers

import (
	"context"
	"fmt"
)

// localBackend is a reproducible test double: its output is a pure function
// of the inputs, with no credentials or network involved.
type localBackend struct{}

func newLocalBackend() *localBackend {
	return &localBackend{}
}

func (b *localBackend) generate(_ context.Context, _, systemPrompt, userMessage string, _ float64) Result {
	return ok(fmt.Sprintf(
		"[local] Processed %q (%d chars) with system context length %d. Ready for research task.",
		userMessage, len(userMessage), len(systemPrompt),
	))
}
