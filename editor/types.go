package editor

import internaleditor "github.com/draftforge/go-sitegen/internal/editor"

// Direction selects where MoveSection shifts a section.
type Direction = internaleditor.Direction

const (
	MoveUp   = internaleditor.MoveUp
	MoveDown = internaleditor.MoveDown
)

// Engine applies synchronous, in-memory mutations to a document.
type Engine = internaleditor.Engine

// DefaultsProvider supplies registry-default data for a section kind.
type DefaultsProvider = internaleditor.DefaultsProvider

// IDGenerator produces section identifiers.
type IDGenerator = internaleditor.IDGenerator

// Option mutates the engine during construction.
type Option = internaleditor.Option

var ErrPageRequired = internaleditor.ErrPageRequired

// NewEngine constructs the mutation engine.
var NewEngine = internaleditor.NewEngine

// WithIDGenerator overrides section id generation.
var WithIDGenerator = internaleditor.WithIDGenerator

// WithLogger attaches the diagnostics logger.
var WithLogger = internaleditor.WithLogger
