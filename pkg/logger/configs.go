package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// 1. production -> INFO
	// 2. development -> DEBUG
	// else -> INFO
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field
	// so that the two demo processes can be told apart in shared output.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`
}
