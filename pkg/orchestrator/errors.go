package orchestrator

import "errors"

// ErrMissingSource is returned when a Request carries no Source.
var ErrMissingSource = errors.New("orchestrator: request needs a source")
