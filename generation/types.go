package generation

import internalgeneration "github.com/draftforge/go-sitegen/internal/generation"

// Status enumerates the generation state machine.
type Status = internalgeneration.Status

const (
	StatusIdle       = internalgeneration.StatusIdle
	StatusGenerating = internalgeneration.StatusGenerating
	StatusCompleted  = internalgeneration.StatusCompleted
	StatusError      = internalgeneration.StatusError
)

var (
	ErrGenerationFailed    = internalgeneration.ErrGenerationFailed
	ErrInsufficientCredits = internalgeneration.ErrInsufficientCredits
	ErrStreamEnded         = internalgeneration.ErrStreamEnded
	ErrJobBusy             = internalgeneration.ErrJobBusy
	ErrEndpointRequired    = internalgeneration.ErrEndpointRequired
)

// ServiceError carries the generator's error body.
type ServiceError = internalgeneration.ServiceError

// BusinessFacts collects what the user told us about their business.
type BusinessFacts = internalgeneration.BusinessFacts

// GenerateRequest is the outbound body of one generation exchange.
type GenerateRequest = internalgeneration.GenerateRequest

// RegenerateRequest asks the generator to rework an existing site.
type RegenerateRequest = internalgeneration.RegenerateRequest

// UploadFile is one reference document attached to a regeneration request.
type UploadFile = internalgeneration.UploadFile

// ResultPayload is the generator's document fragment.
type ResultPayload = internalgeneration.ResultPayload

// Job tracks one generation request to a terminal state.
type Job = internalgeneration.Job

// Service drives generation requests against the remote generator.
type Service = internalgeneration.Service

// Option mutates the service during construction.
type Option = internalgeneration.Option

// NewJob returns an idle job.
var NewJob = internalgeneration.NewJob

// NewService constructs the generation service.
var NewService = internalgeneration.NewService

// WithHTTPClient overrides the HTTP client.
var WithHTTPClient = internalgeneration.WithHTTPClient

// WithRegenerationEndpoint sets the regeneration endpoint.
var WithRegenerationEndpoint = internalgeneration.WithRegenerationEndpoint

// MergeResult folds a generation payload into an existing document.
var MergeResult = internalgeneration.MergeResult

// BuildDocument turns a first-generation payload into a fresh document.
var BuildDocument = internalgeneration.BuildDocument
