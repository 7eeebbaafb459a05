package generation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/draftforge/go-sitegen/internal/document"
)

// Status enumerates the generation state machine. The only transitions are
// idle → generating → completed, generating → error on any failure, and
// error → idle on user acknowledgment.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

var (
	ErrGenerationFailed    = errors.New("generation: request failed")
	ErrInsufficientCredits = errors.New("generation: insufficient credits")
	ErrStreamEnded         = errors.New("generation: stream ended without a result")
	ErrJobBusy             = errors.New("generation: job already running")
)

// ServiceError carries the generator's error body. Billing rejections are
// kept distinct from generic failures so the UI can offer a shortcut to the
// billing page instead of a plain error message.
type ServiceError struct {
	StatusCode   int
	Message      string
	NeedsCredits bool
}

func (e *ServiceError) Error() string {
	if e == nil {
		return ErrGenerationFailed.Error()
	}
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = fmt.Sprintf("status %d", e.StatusCode)
	}
	if e.NeedsCredits {
		return fmt.Sprintf("%s: %s", ErrInsufficientCredits.Error(), msg)
	}
	return fmt.Sprintf("%s: %s", ErrGenerationFailed.Error(), msg)
}

func (e *ServiceError) Unwrap() error {
	if e != nil && e.NeedsCredits {
		return ErrInsufficientCredits
	}
	return ErrGenerationFailed
}

// BusinessFacts collects what the user told us about their business. Name is
// the only hard requirement; everything else improves generation quality.
type BusinessFacts struct {
	Name        string   `json:"name"`
	Industry    string   `json:"industry,omitempty"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Services    []string `json:"services,omitempty"`
}

// GenerateRequest is the outbound body of one generation exchange.
type GenerateRequest struct {
	ProjectID    uuid.UUID     `json:"-"`
	Facts        BusinessFacts `json:"businessFacts"`
	TemplateID   string        `json:"templateId"`
	PriorAuditID string        `json:"priorAuditId,omitempty"`
}

// Validate rejects incomplete requests before any network call is made.
func (r GenerateRequest) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.Facts.Name) == "" {
		errs["businessFacts.name"] = validation.NewError("sitegen.generation.name_required", "business name is required")
	}
	if strings.TrimSpace(r.TemplateID) == "" {
		errs["templateId"] = validation.NewError("sitegen.generation.template_required", "template id is required")
	}
	if r.ProjectID == uuid.Nil {
		errs["projectId"] = validation.NewError("sitegen.generation.project_required", "project id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResultPayload is the generator's document fragment. Keys it includes are
// authoritative; keys it omits leave the existing document untouched.
type ResultPayload struct {
	Site       *document.SiteConfig       `json:"site,omitempty"`
	Pages      []*document.Page           `json:"pages,omitempty"`
	Navigation *document.NavigationConfig `json:"navigation,omitempty"`
}

// event is one decoded progress line from the stream. Statuses other than
// completed and error are heartbeats and are ignored.
type event struct {
	Status  string         `json:"status"`
	Result  *ResultPayload `json:"result,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Job tracks one generation request from submission to a terminal state. Jobs
// are ephemeral: they are never persisted and are discarded once the UI moves
// on or a new request starts.
type Job struct {
	mu            sync.Mutex
	status        Status
	result        *ResultPayload
	errorMessage  string
	creditsNeeded bool
}

// NewJob returns an idle job.
func NewJob() *Job {
	return &Job{status: StatusIdle}
}

// Status returns the current state.
func (j *Job) Status() Status {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

// Result returns the payload attached by a completed event, nil otherwise.
func (j *Job) Result() *ResultPayload {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// ErrorMessage returns the user-facing failure message for the error state.
func (j *Job) ErrorMessage() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.errorMessage
}

// CreditsNeeded reports whether the failure was a billing rejection.
func (j *Job) CreditsNeeded() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.creditsNeeded
}

// Acknowledge transitions error back to idle once the user has dismissed the
// failure. Other states are unaffected.
func (j *Job) Acknowledge() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status == StatusError {
		j.status = StatusIdle
		j.errorMessage = ""
		j.creditsNeeded = false
	}
}

func (j *Job) begin() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status == StatusGenerating {
		return ErrJobBusy
	}
	j.status = StatusGenerating
	j.result = nil
	j.errorMessage = ""
	j.creditsNeeded = false
	return nil
}

func (j *Job) complete(result *ResultPayload) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusCompleted
	j.result = result
}

func (j *Job) fail(message string, creditsNeeded bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusError
	j.errorMessage = message
	j.creditsNeeded = creditsNeeded
}
