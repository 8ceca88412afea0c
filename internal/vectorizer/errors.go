package vectorizer

import "fmt"

// ConfigurationError reports an invalid fit request: an empty corpus or
// out-of-range options. It is a hard failure surfaced to the caller.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("vectorizer configuration error: %s", e.Reason)
}

// NotFittedError reports an operation that requires a fitted corpus before
// one exists. Callers must fit (or load a snapshot) before transforming.
type NotFittedError struct {
	Op string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("%s requires a fitted corpus: call Fit first", e.Op)
}
