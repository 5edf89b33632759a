// Package reporter forwards failure descriptions to Sentry.
//
// It is the project's "error-reporting collaborator": when the client's hello
// call fails, or the server rejects invalid input, one failure report is sent
// here and becomes visible in the Sentry issue UI.
//
// The Reporter is a single configuration-bound client built at process start:
//
//	sink := reporter.NewClient(reporter.Config{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "development",
//	}, log)
//
//	sink.CaptureError(err, map[string]string{"component": "orchestrator"})
//
// It deliberately avoids the Sentry SDK's package-level hub; consumers receive
// the Reporter explicitly, and code under test swaps in a fake sink instead of
// scrubbing global state between tests.
//
// An empty DSN yields a disabled reporter whose captures are no-ops, so the
// demo runs without a Sentry account.
package reporter
