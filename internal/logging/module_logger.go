package logging

import (
	"context"
	"strings"

	"github.com/draftforge/go-sitegen/pkg/interfaces"
)

const (
	rootModule       = "sitegen"
	renderModule     = "sitegen.render"
	editorModule     = "sitegen.editor"
	generationModule = "sitegen.generation"
	storageModule    = "sitegen.storage"
)

const (
	fieldProjectID = "project_id"
	fieldPageSlug  = "page_slug"
	fieldSectionID = "section_id"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RenderLogger returns the logger namespace reserved for the section renderer.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// EditorLogger returns the logger namespace reserved for the mutation engine.
func EditorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, editorModule)
}

// GenerationLogger returns the logger namespace reserved for the generation pipeline.
func GenerationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generationModule)
}

// StorageLogger returns the logger namespace reserved for document persistence.
func StorageLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storageModule)
}

// WithEditContext enriches the provided logger with common editing fields such
// as project id, page slug, and section id. Empty values are ignored.
func WithEditContext(logger interfaces.Logger, projectID, pageSlug, sectionID string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(projectID); trimmed != "" {
		fields[fieldProjectID] = trimmed
	}
	if trimmed := strings.TrimSpace(pageSlug); trimmed != "" {
		fields[fieldPageSlug] = trimmed
	}
	if trimmed := strings.TrimSpace(sectionID); trimmed != "" {
		fields[fieldSectionID] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
