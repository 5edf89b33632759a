package orchestrator

import "time"

// Defaults point at the server process on its well-known local port.
const (
	DefaultHelloURL       = "http://127.0.0.1:3001/hello"
	DefaultMessage        = "hi from tracehop"
	DefaultSpanName       = "demo-client-request"
	DefaultSpanOperation  = "http.client"
	DefaultRequestTimeout = 10 * time.Second
)

// DefaultWarmupTargets are the fixed external addresses hit before the hello
// call. Their responses are discarded; they exist so the trace shows several
// outbound calls inside one unit of work.
var DefaultWarmupTargets = []string{
	"https://example.com",
	"https://www.wikipedia.org",
	"https://httpbin.org/get",
}

type Config struct {
	// WarmupTargets are the external addresses called first, in order.
	WarmupTargets []string `yaml:"warmup_targets" envconfig:"CLIENT_WARMUP_TARGETS"`

	// HelloURL is the local server endpoint whose response becomes the Outcome.
	HelloURL string `yaml:"hello_url" envconfig:"CLIENT_HELLO_URL"`

	// Message is sent as the hello endpoint's "message" query parameter.
	Message string `yaml:"message" envconfig:"CLIENT_MESSAGE"`

	// SpanName labels the unit of work wrapping the whole call sequence.
	SpanName string `yaml:"span_name" envconfig:"CLIENT_SPAN_NAME"`

	// SpanOperation categorizes the unit of work, e.g. "http.client".
	SpanOperation string `yaml:"span_operation" envconfig:"CLIENT_SPAN_OPERATION"`

	// RequestTimeout bounds each individual outbound call. The orchestrator
	// itself imposes no deadline on the overall run.
	RequestTimeout time.Duration `yaml:"request_timeout" envconfig:"CLIENT_REQUEST_TIMEOUT"`
}

// withDefaults fills in zero values so an empty Config is runnable.
func (c Config) withDefaults() Config {
	if len(c.WarmupTargets) == 0 {
		c.WarmupTargets = DefaultWarmupTargets
	}
	if c.HelloURL == "" {
		c.HelloURL = DefaultHelloURL
	}
	if c.Message == "" {
		c.Message = DefaultMessage
	}
	if c.SpanName == "" {
		c.SpanName = DefaultSpanName
	}
	if c.SpanOperation == "" {
		c.SpanOperation = DefaultSpanOperation
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	return c
}
