package orchestrator

import "fmt"

// StatusError describes an application-level failure: the hello endpoint
// answered, but with a non-success status. It carries the status information
// so the failure report in Sentry shows what the server said.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hello call returned %s", e.Status)
}
