package providers

// DegradeReason explains why a generation result is degraded.
type DegradeReason string

// Degradation reasons.
const (
	// ReasonMissingCredential marks a placeholder produced because the
	// backend credential is not configured.
	ReasonMissingCredential DegradeReason = "missing_credential"

	// ReasonProviderError marks an error-annotated result produced because
	// the backend call failed.
	ReasonProviderError DegradeReason = "provider_error"

	// ReasonUnknownModel marks a result produced for a model identifier no
	// resolution rule matches.
	ReasonUnknownModel DegradeReason = "unknown_model"
)

// Result is the outcome of a generation call. Provider-boundary failures are
// deliberately expressed as degraded results rather than errors so a failing
// backend never breaks request flow; Degraded and Reason let callers and
// tests distinguish live text from the fallback paths.
type Result struct {
	Text     string
	Degraded bool
	Reason   DegradeReason
}

func ok(text string) Result {
	return Result{Text: text}
}

func degraded(reason DegradeReason, text string) Result {
	return Result{Text: text, Degraded: true, Reason: reason}
}
