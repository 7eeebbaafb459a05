package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/draftforge/go-sitegen/internal/logging"
	"github.com/draftforge/go-sitegen/pkg/interfaces"
)

var ErrEndpointRequired = errors.New("generation: endpoint is required")

// HTTPClient is the subset of http.Client the service uses.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option mutates the service during construction.
type Option func(*Service)

// WithHTTPClient overrides the HTTP client, useful for tests and custom
// transports.
func WithHTTPClient(client HTTPClient) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithLogger attaches the generation logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegenerationEndpoint sets the endpoint regeneration requests are posted
// to. Defaults to the generation endpoint.
func WithRegenerationEndpoint(endpoint string) Option {
	return func(s *Service) {
		if strings.TrimSpace(endpoint) != "" {
			s.regenEndpoint = endpoint
		}
	}
}

// Service drives generation requests against the remote generator and feeds
// progress into a Job.
type Service struct {
	endpoint      string
	regenEndpoint string
	client        HTTPClient
	logger        interfaces.Logger
}

// NewService constructs the generation service for the given endpoint.
func NewService(endpoint string, opts ...Option) (*Service, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, ErrEndpointRequired
	}
	svc := &Service{
		endpoint:      endpoint,
		regenEndpoint: endpoint,
		client:        http.DefaultClient,
		logger:        logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Generate submits the request and consumes the chunked response into job
// until a terminal event or the end of the stream. The call is synchronous;
// run it on its own goroutine when the caller must stay responsive.
// Cancelling ctx stops consumption without driving job to a terminal state.
func (s *Service) Generate(ctx context.Context, job *Job, req GenerateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if job == nil {
		job = NewJob()
	}
	if err := job.begin(); err != nil {
		return err
	}

	body, err := json.Marshal(req)
	if err != nil {
		job.fail(err.Error(), false)
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		job.fail(err.Error(), false)
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	s.logger.Info("generation request submitted",
		"project_id", req.ProjectID.String(),
		"template_id", req.TemplateID,
	)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		job.fail(err.Error(), false)
		return &ServiceError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		svcErr := parseErrorResponse(resp)
		job.fail(svcErr.Message, svcErr.NeedsCredits)
		return svcErr
	}

	return s.consume(ctx, job, resp.Body)
}

// consume walks the event stream and applies terminal events to job.
func (s *Service) consume(ctx context.Context, job *Job, body io.Reader) error {
	terminal := false
	err := consumeLines(ctx, body, func(line string) bool {
		if line == doneSentinel {
			return false
		}
		if !strings.HasPrefix(line, eventPrefix) {
			return true
		}
		var ev event
		if jsonErr := json.Unmarshal([]byte(line[len(eventPrefix):]), &ev); jsonErr != nil {
			s.logger.Debug("skipping malformed stream line", "error", jsonErr)
			return true
		}
		switch ev.Status {
		case "completed":
			job.complete(ev.Result)
			terminal = true
			return false
		case "error":
			message := ev.Message
			if message == "" {
				message = "generation failed"
			}
			job.fail(message, false)
			terminal = true
			return false
		default:
			// Progress heartbeat; nothing to record.
			return true
		}
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Abandoned by the caller; the job is discarded with it.
			return err
		}
		job.fail(err.Error(), false)
		return err
	}
	if !terminal {
		job.fail(ErrStreamEnded.Error(), false)
		return ErrStreamEnded
	}
	return nil
}

// parseErrorResponse decodes the generator's error body, falling back to a
// status-code message when the body is not the expected JSON shape.
func parseErrorResponse(resp *http.Response) *ServiceError {
	svcErr := &ServiceError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(raw) > 0 {
		var payload struct {
			Message      string `json:"message"`
			NeedsCredits bool   `json:"needsCredits"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			svcErr.Message = payload.Message
			svcErr.NeedsCredits = payload.NeedsCredits
		}
	}
	if svcErr.Message == "" {
		svcErr.Message = http.StatusText(resp.StatusCode)
	}
	return svcErr
}
