package reporter

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// CaptureError sends one failure report to Sentry, tagged with the given
// key/value pairs. When the reporter is disabled the error is only logged
// at debug level.
//
// Example:
//
//	sink.CaptureError(fmt.Errorf("hello call failed: %w", err), map[string]string{
//	    "component": "orchestrator",
//	})
func (r *Reporter) CaptureError(err error, tags map[string]string) {
	if r.hub == nil {
		r.logger.Debug("reporter disabled, dropping error report", err, nil)
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

// CaptureMessage sends a plain-text event to Sentry with the given tags.
func (r *Reporter) CaptureMessage(msg string, tags map[string]string) {
	if r.hub == nil {
		r.logger.Debug("reporter disabled, dropping message report", nil, map[string]interface{}{
			"message": msg,
		})
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureMessage(msg)
	})
}

// Flush drains buffered events, blocking for at most the given timeout.
// It returns true when everything was delivered in time. Call it before
// process exit; the fx lifecycle hook does this automatically.
func (r *Reporter) Flush(timeout time.Duration) bool {
	if r.hub == nil {
		return true
	}
	return r.hub.Flush(timeout)
}
