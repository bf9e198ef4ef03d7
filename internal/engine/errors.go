package engine

import "fmt"

// ConfigError marks a configuration rejected before any computation ran.
// The field name identifies the offending input.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// InconsistencyError marks a fatal internal defect, such as a static
// catalog missing an expected entry. The request is aborted rather than
// returning a partially correct estimate.
type InconsistencyError struct {
	Err error
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("internal inconsistency: %v", e.Err)
}

func (e *InconsistencyError) Unwrap() error { return e.Err }
