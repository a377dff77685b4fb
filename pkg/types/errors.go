// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// InputError reports invalid or empty user input. The pipeline recovers
// from it locally by re-prompting; it never terminates a run on its own.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ConfigError reports a missing or unusable credential or setting. It is
// fatal and is raised before any network call is attempted.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Reason)
}

// ServiceError reports a failed call to an external AI service: a
// transport error, a non-success HTTP status, or an empty response body.
// It is fatal for the current run; nothing is retried.
type ServiceError struct {
	// Service names the failing collaborator ("research" or "compose").
	Service string

	// Status is the HTTP status code, or 0 for transport errors.
	Status int

	// Err is the underlying cause, if any.
	Err error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("%s service returned HTTP %d: %v", e.Service, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s service returned HTTP %d", e.Service, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s service request failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s service returned an empty response", e.Service)
}

func (e *ServiceError) Unwrap() error { return e.Err }
