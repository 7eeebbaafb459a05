package sitegen

import (
	"github.com/draftforge/go-sitegen/internal/di"
	"github.com/draftforge/go-sitegen/internal/editor"
	"github.com/draftforge/go-sitegen/internal/generation"
	"github.com/draftforge/go-sitegen/internal/render"
	"github.com/draftforge/go-sitegen/internal/storage"
	"github.com/draftforge/go-sitegen/pkg/interfaces"
)

// Editor exports the document mutation engine.
type Editor = editor.Engine

// Registry exports the section renderer registry.
type Registry = render.Registry

// GenerationService exports the generation pipeline contract.
type GenerationService = generation.Service

// Store exports the document persistence contract.
type Store = storage.Store

// Module represents the top level sitegen runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a sitegen module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Editor returns the configured document mutation engine.
func (m *Module) Editor() *Editor {
	return m.container.Editor()
}

// Renderers returns the section renderer registry.
func (m *Module) Renderers() *Registry {
	return m.container.Registry()
}

// Store returns the configured document store, nil when the persistence
// feature is off and no override was supplied.
func (m *Module) Store() Store {
	return m.container.Store()
}

// Generation returns the generation service, nil when the feature is off.
func (m *Module) Generation() *GenerationService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Generation()
}

// LoggerProvider returns the configured logging provider, possibly nil.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LoggerProvider()
}
