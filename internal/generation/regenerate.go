package generation

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/draftforge/go-sitegen/internal/document"
)

// UploadFile is one reference document attached to a regeneration request.
type UploadFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// RegenerateRequest asks the generator to rework an existing site using
// uploaded reference material and free-form notes. At least one of the two
// must be present.
type RegenerateRequest struct {
	ProjectID uuid.UUID
	Notes     string
	Files     []UploadFile
}

// Validate ensures the request carries something for the generator to work
// with.
func (r RegenerateRequest) Validate() error {
	errs := validation.Errors{}
	if r.ProjectID == uuid.Nil {
		errs["projectId"] = validation.NewError("sitegen.generation.project_required", "project id is required")
	}
	if strings.TrimSpace(r.Notes) == "" && len(r.Files) == 0 {
		errs["notes"] = validation.NewError("sitegen.generation.input_required", "notes or files are required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Regenerate uploads the request as multipart form data and consumes the
// resulting event stream the same way Generate does. The completed payload is
// a document fragment; apply it with MergeResult.
func (s *Service) Regenerate(ctx context.Context, job *Job, req RegenerateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if job == nil {
		job = NewJob()
	}
	if err := job.begin(); err != nil {
		return err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if req.Notes != "" {
		if err := writer.WriteField("notes", req.Notes); err != nil {
			job.fail(err.Error(), false)
			return err
		}
	}
	for i, file := range req.Files {
		name := file.Name
		if name == "" {
			name = fmt.Sprintf("upload-%d", i)
		}
		part, err := writer.CreateFormFile("files", name)
		if err != nil {
			job.fail(err.Error(), false)
			return err
		}
		if _, err := part.Write(file.Content); err != nil {
			job.fail(err.Error(), false)
			return err
		}
	}
	if err := writer.Close(); err != nil {
		job.fail(err.Error(), false)
		return err
	}

	endpoint := strings.TrimRight(s.regenEndpoint, "/") + "/" + req.ProjectID.String()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		job.fail(err.Error(), false)
		return err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Accept", "text/event-stream")

	s.logger.Info("regeneration request submitted",
		"project_id", req.ProjectID.String(),
		"files", len(req.Files),
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

// MergeResult folds a generation payload into an existing document. Keys the
// payload includes replace the document's values wholesale; pages merge by
// slug so a partial regeneration never discards unrelated pages. The input
// document is not mutated.
func MergeResult(doc *document.Document, payload *ResultPayload) *document.Document {
	if doc == nil {
		doc = &document.Document{}
	}
	merged := document.Clone(doc)
	if payload == nil {
		return merged
	}
	if payload.Site != nil {
		merged.Site = *payload.Site
	}
	if payload.Navigation != nil {
		merged.Navigation = payload.Navigation
	}
	if payload.Pages != nil {
		for _, page := range payload.Pages {
			if page == nil {
				continue
			}
			replaced := false
			for i, existing := range merged.Pages {
				if existing != nil && existing.Slug == page.Slug {
					merged.Pages[i] = document.ClonePage(page)
					replaced = true
					break
				}
			}
			if !replaced {
				merged.Pages = append(merged.Pages, document.ClonePage(page))
			}
		}
	}
	for _, page := range merged.Pages {
		document.NormalizeSectionOrder(page)
	}
	merged.UpdatedAt = time.Now().UTC()
	return merged
}

// BuildDocument turns a first-generation payload into a fresh document for a
// project with no prior content.
func BuildDocument(projectID uuid.UUID, payload *ResultPayload) *document.Document {
	doc := document.New(projectID)
	return applyPayload(doc, payload)
}

func applyPayload(doc *document.Document, payload *ResultPayload) *document.Document {
	if payload == nil {
		return doc
	}
	merged := MergeResult(doc, payload)
	merged.ProjectID = doc.ProjectID
	return merged
}
