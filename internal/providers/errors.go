package providers

import "errors"

// ErrUnknownModel indicates a model identifier that no backend resolution
// rule matches. It is fatal to the single generation call, never to the
// process.
var ErrUnknownModel = errors.New("unknown model id")
