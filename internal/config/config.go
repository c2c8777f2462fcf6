package config

import "time"

// Environment selects which API origin the client talks to.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// BaseURL returns the fixed origin for the environment. Every request path is
// appended to base + "/api/" + version.
func (e Environment) BaseURL() string {
	switch e {
	case Production:
		return "https://api.nutritrack.app"
	case Staging:
		return "https://staging-api.nutritrack.app"
	default:
		return "https://dev-api.nutritrack.app"
	}
}

type APIConfig struct {
	// BaseURL overrides the environment's fixed origin when set, e.g. for a
	// locally running API.
	BaseURL string `env:"BASE_URL"`
	// Version is the API version segment, e.g. "v1" -> base + "/api/v1".
	Version string `env:"VERSION" envDefault:"v1"`
	// RequestTimeout is the default per-request timeout; individual calls may override it.
	RequestTimeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// ClientInfo carries the values sent in the standard identification headers.
type ClientInfo struct {
	AppVersion  string `env:"APP_VERSION" envDefault:"1.0.0"`
	BuildNumber string `env:"BUILD_NUMBER" envDefault:"1"`
	Platform    string `env:"PLATFORM" envDefault:"iOS"`
	OSVersion   string `env:"OS_VERSION" envDefault:"17.0"`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"nutritrack-client"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "http://otel-collector:4317"
	OtelEndpoint string `env:"ENDPOINT"`
}

type Config struct {
	Environment Environment `env:"APP_ENV" envDefault:"development"`

	API           APIConfig           `envPrefix:"API_"`
	Client        ClientInfo          `envPrefix:"CLIENT_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
}
