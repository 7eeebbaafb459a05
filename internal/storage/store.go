package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/draftforge/go-sitegen/internal/document"
)

var ErrProjectRequired = errors.New("storage: project id is required")

// DocumentNotFoundError indicates no stored document exists for a project.
type DocumentNotFoundError struct {
	ProjectID uuid.UUID
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("storage: document not found for project %s", e.ProjectID)
}

func (e *DocumentNotFoundError) Is(target error) bool {
	_, ok := target.(*DocumentNotFoundError)
	return ok
}

// Store persists website documents keyed by project id. Save is
// last-write-wins: the whole document replaces whatever was stored before.
type Store interface {
	Load(ctx context.Context, projectID uuid.UUID) (*document.Document, error)
	Save(ctx context.Context, doc *document.Document) error
	Publish(ctx context.Context, projectID uuid.UUID) error
	Delete(ctx context.Context, projectID uuid.UUID) error
}
