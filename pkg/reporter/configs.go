package reporter

type Config struct {
	// DSN is the Sentry project endpoint. An empty DSN disables the
	// reporter entirely; every capture becomes a no-op so local runs
	// do not need a Sentry account.
	DSN string `yaml:"dsn" envconfig:"SENTRY_DSN"`

	// Environment tags every event ("development", "staging", "production").
	Environment string `yaml:"environment" envconfig:"SENTRY_ENVIRONMENT"`

	// Release tags every event with the running build, e.g. "tracehop@0.1.0".
	Release string `yaml:"release" envconfig:"SENTRY_RELEASE"`

	// Debug makes the Sentry SDK print what it is doing to stderr.
	Debug bool `yaml:"debug" envconfig:"SENTRY_DEBUG"`

	// AttachStacktrace attaches a stack trace to captured messages
	// (errors always carry one).
	AttachStacktrace bool `yaml:"attach_stacktrace" envconfig:"SENTRY_ATTACH_STACKTRACE"`
}
