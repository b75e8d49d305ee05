// Package agent validates and dispatches payloads to the external rewriting
// and sourcing collaborators with timeout discipline.
package agent

import (
	"fmt"
	"time"
)

// TimeoutError indicates a collaborator call exceeded its configured timeout.
// The caller decides whether to retry.
type TimeoutError struct {
	Agent   string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("agent %s timed out after %s", e.Agent, e.Timeout)
}

// FailureError indicates an unrecoverable collaborator failure: retries
// exhausted or a rejection the caller decided not to retry. It terminates an
// optimization run while preserving its partial snapshots.
type FailureError struct {
	Agent   string
	Message string
	Cause   error
}

func (e *FailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("agent %s failed: %s: %v", e.Agent, e.Message, e.Cause)
	}
	return fmt.Sprintf("agent %s failed: %s", e.Agent, e.Message)
}

func (e *FailureError) Unwrap() error {
	return e.Cause
}

// HandlerNotConfiguredError indicates a payload was sent to a collaborator
// with no handler registered. This is a configuration error, not a payload
// problem, and is the one case the client surfaces as an error rather than a
// structured rejection.
type HandlerNotConfiguredError struct {
	Agent string
}

func (e *HandlerNotConfiguredError) Error() string {
	return fmt.Sprintf("no handler configured for agent %s", e.Agent)
}
