package render

import internalrender "github.com/draftforge/go-sitegen/internal/render"

// Mode selects between live and preview rendering.
type Mode = internalrender.Mode

const (
	// ModeLive renders published output; empty fields render as nothing.
	ModeLive = internalrender.ModeLive
	// ModePreview renders editing output; empty fields render placeholders.
	ModePreview = internalrender.ModePreview
)

// Built-in section kinds.
const (
	KindHero         = internalrender.KindHero
	KindText         = internalrender.KindText
	KindFeatures     = internalrender.KindFeatures
	KindServices     = internalrender.KindServices
	KindTestimonials = internalrender.KindTestimonials
	KindStats        = internalrender.KindStats
	KindProcess      = internalrender.KindProcess
	KindFAQ          = internalrender.KindFAQ
	KindPricing      = internalrender.KindPricing
	KindProducts     = internalrender.KindProducts
	KindCTA          = internalrender.KindCTA
	KindImage        = internalrender.KindImage
	KindTeam         = internalrender.KindTeam
	KindPortfolio    = internalrender.KindPortfolio
)

// Context carries per-render inputs into section renderers.
type Context = internalrender.Context

// Output is the rendered HTML fragment for one section.
type Output = internalrender.Output

// Renderer renders one section kind.
type Renderer = internalrender.Renderer

// RendererFunc adapts a function to the Renderer contract.
type RendererFunc = internalrender.RendererFunc

// Entry pairs a kind's rendering strategy with its section defaults.
type Entry = internalrender.Entry

// Registry dispatches sections to kind renderers.
type Registry = internalrender.Registry

// RegistryOption mutates the registry during construction.
type RegistryOption = internalrender.RegistryOption

// NewRegistry returns a registry with the built-in kinds registered.
var NewRegistry = internalrender.NewRegistry

// WithAssetBaseURL sets the asset base applied to contexts without their own.
var WithAssetBaseURL = internalrender.WithAssetBaseURL

// WithLogger attaches the diagnostics logger used for fallback reports.
var WithLogger = internalrender.WithLogger
