package sitegen

import "github.com/draftforge/go-sitegen/internal/runtimeconfig"

// Config aggregates the module configuration.
type Config = runtimeconfig.Config

// StorageConfig selects the backing document store.
type StorageConfig = runtimeconfig.StorageConfig

// GeneratorConfig captures the external generator bindings.
type GeneratorConfig = runtimeconfig.GeneratorConfig

// RenderConfig carries rendering conventions.
type RenderConfig = runtimeconfig.RenderConfig

// LoggingConfig captures runtime logging options.
type LoggingConfig = runtimeconfig.LoggingConfig

// Features toggles module functionality.
type Features = runtimeconfig.Features

// DefaultConfig returns the baseline module configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
