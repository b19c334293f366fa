package search

import "fmt"

// EngineErrorKind classifies search engine failures.
type EngineErrorKind uint8

const (
	// InvalidConfig indicates Config.Validate rejected the configuration.
	InvalidConfig EngineErrorKind = iota

	// InvariantViolation indicates a data-model invariant was broken
	// (negative piece count, out-of-range piece, direction outside
	// {u,d,l,r}). In a
	// debug build (-tags debug) this is also a panic via internal/assert;
	// this error is what a release build sees instead.
	InvariantViolation

	// ResourceExhausted indicates Config.MaxStates was reached.
	ResourceExhausted
)

func (k EngineErrorKind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case InvariantViolation:
		return "InvariantViolation"
	case ResourceExhausted:
		return "ResourceExhausted"
	default:
		return fmt.Sprintf("UnknownEngineErrorKind(%d)", k)
	}
}

// EngineError reports a failure in the search engine itself, as opposed to
// a failure loading or validating the map (see package loader).
type EngineError struct {
	Kind    EngineErrorKind
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("search: %s: %s", e.Kind, e.Message)
}
