package hello

import "time"

const (
	// DefaultWorkDelay pads the simulated-work span so the trace shows a
	// child with visible duration.
	DefaultWorkDelay = 200 * time.Millisecond

	// DefaultValidateDelay is the simulated cost of validating the message.
	DefaultValidateDelay = 50 * time.Millisecond
)

type Config struct {
	// WorkDelay is how long the simulated-work span lasts. Zero disables
	// the artificial delay (tests rely on this).
	WorkDelay time.Duration `yaml:"work_delay" envconfig:"SERVER_WORK_DELAY"`

	// ValidateDelay is how long the validation span lasts.
	ValidateDelay time.Duration `yaml:"validate_delay" envconfig:"SERVER_VALIDATE_DELAY"`
}
