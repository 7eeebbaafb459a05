package runtimeconfig

import (
	"errors"
	"strings"
	"time"
)

// ErrGeneratorEndpointRequired indicates the generator client cannot be built.
var ErrGeneratorEndpointRequired = errors.New("sitegen config: generator endpoint is required when generation is enabled")

// ErrLoggingProviderRequired indicates the logging feature was enabled without a provider.
var ErrLoggingProviderRequired = errors.New("sitegen config: logging provider is required when logging feature is enabled")

// ErrLoggingProviderUnknown indicates an unsupported logging provider value.
var ErrLoggingProviderUnknown = errors.New("sitegen config: logging provider is invalid")

// ErrLoggingLevelInvalid indicates an unsupported logging level value.
var ErrLoggingLevelInvalid = errors.New("sitegen config: logging level is invalid")

// ErrLoggingFormatInvalid indicates an unsupported logging format value.
var ErrLoggingFormatInvalid = errors.New("sitegen config: logging format is invalid")

// ErrStorageProviderUnknown indicates an unsupported storage provider value.
var ErrStorageProviderUnknown = errors.New("sitegen config: storage provider is invalid")

// Config aggregates feature flags and adapter bindings for the sitegen module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled   bool
	Storage   StorageConfig
	Generator GeneratorConfig
	Render    RenderConfig
	Logging   LoggingConfig
	Features  Features
}

// StorageConfig selects the backing document store.
type StorageConfig struct {
	// Provider picks the store implementation: "memory" (default) or "bun".
	Provider string
}

// GeneratorConfig captures the external content-generation service bindings.
type GeneratorConfig struct {
	// Endpoint receives generation requests and answers with an event stream.
	Endpoint string
	// RegenerationEndpoint receives per-project regeneration requests; the
	// project id is appended as the final path segment.
	RegenerationEndpoint string
	// Timeout bounds a single generation exchange. Zero means no timeout;
	// the stream has no fixed deadline of its own.
	Timeout time.Duration
}

// RenderConfig carries rendering conventions threaded through section renderers.
type RenderConfig struct {
	// AssetBaseURL prefixes internal storage keys when resolving image
	// references. Fully qualified URLs pass through untouched.
	AssetBaseURL string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	// Generation enables the external generation client; it requires
	// Generator.Endpoint.
	Generation bool
	// Persistence enables document store construction. When off the module
	// exposes no store and hosts keep documents in their own state.
	Persistence bool
	Logger      bool
}

// DefaultConfig returns the baseline configuration used by the module façade.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "memory",
		},
		Render: RenderConfig{
			AssetBaseURL: "/media",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "console",
		},
		Features: Features{
			Generation:  true,
			Persistence: true,
		},
	}
}

// Validate checks cross-field consistency before the container boots.
func (c Config) Validate() error {
	if c.Features.Generation && strings.TrimSpace(c.Generator.Endpoint) == "" {
		return ErrGeneratorEndpointRequired
	}

	switch strings.ToLower(strings.TrimSpace(c.Storage.Provider)) {
	case "", "memory", "bun":
	default:
		return ErrStorageProviderUnknown
	}

	if c.Features.Logger {
		provider := strings.ToLower(strings.TrimSpace(c.Logging.Provider))
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		switch provider {
		case "console", "gologger", "noop":
		default:
			return ErrLoggingProviderUnknown
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
		case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return ErrLoggingLevelInvalid
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
		case "", "json", "console", "pretty":
		default:
			return ErrLoggingFormatInvalid
		}
	}

	return nil
}
