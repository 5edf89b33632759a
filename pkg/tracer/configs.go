package tracer

type Config struct {
	// ServiceName identifies the process in the tracing backend,
	// e.g. "tracehop-client" or "tracehop-server".
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`

	// AppEnv tags every span with the deployment environment
	// ("development", "staging", "production").
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport controls whether spans are shipped to an OTLP/HTTP
	// collector. When false the provider still records spans (tests rely
	// on this) but nothing leaves the process.
	//
	// The collector endpoint is taken from the standard OTLP environment
	// variables (OTEL_EXPORTER_OTLP_ENDPOINT et al.).
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// SampleRatio is the fraction of new traces to sample, in [0, 1].
	// Child spans always follow their parent's decision. Zero means
	// "not set" and falls back to sampling everything, which is what a
	// demonstration wants.
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"TRACER_SAMPLE_RATIO"`
}
