package storage

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/draftforge/go-sitegen/internal/document"
	"github.com/draftforge/go-sitegen/internal/logging"
	"github.com/draftforge/go-sitegen/pkg/interfaces"
)

// BunStore persists documents in a relational database through bun.
type BunStore struct {
	db     *bun.DB
	sites  repository.Repository[*SiteRecord]
	pages  repository.Repository[*PageRecord]
	logger interfaces.Logger
	clock  func() time.Time
}

// BunOption mutates the store during construction.
type BunOption func(*BunStore)

// WithBunLogger attaches the storage logger.
func WithBunLogger(logger interfaces.Logger) BunOption {
	return func(s *BunStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBunClock overrides the timestamp source, useful for deterministic tests.
func WithBunClock(clock func() time.Time) BunOption {
	return func(s *BunStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewBunStore constructs a Store backed by the given bun database.
func NewBunStore(db *bun.DB, opts ...BunOption) *BunStore {
	store := &BunStore{
		db:     db,
		sites:  NewSiteRepository(db),
		pages:  NewPageRepository(db),
		logger: logging.NoOp(),
		clock:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Load reassembles the stored document for a project.
func (s *BunStore) Load(ctx context.Context, projectID uuid.UUID) (*document.Document, error) {
	if projectID == uuid.Nil {
		return nil, ErrProjectRequired
	}

	site, err := s.getSite(ctx, projectID)
	if err != nil {
		return nil, err
	}

	pages, _, err := s.pages.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.project_id = ?", projectID)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.position ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "pages", projectID)
	}

	return decodeRecords(site, pages)
}

// Save replaces the stored document wholesale. The site row and every page
// row are rewritten in one transaction; concurrent saves are last-write-wins.
func (s *BunStore) Save(ctx context.Context, doc *document.Document) error {
	if doc == nil {
		return document.ErrDocumentRequired
	}
	if doc.ProjectID == uuid.Nil {
		return ErrProjectRequired
	}

	now := s.clock()
	site, pages, err := encodeRecords(doc, now)
	if err != nil {
		return err
	}

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var existing SiteRecord
		found := true
		if err := tx.NewSelect().
			Model(&existing).
			Where("?TableAlias.project_id = ?", doc.ProjectID).
			Limit(1).
			Scan(ctx); err != nil {
			found = false
		}
		if found {
			site.ID = existing.ID
			site.CreatedAt = existing.CreatedAt
			site.Published = existing.Published
			site.PublishedAt = existing.PublishedAt
			if _, err := tx.NewUpdate().
				Model(site).
				WherePK().
				Exec(ctx); err != nil {
				return fmt.Errorf("update site document: %w", err)
			}
		} else {
			if _, err := tx.NewInsert().Model(site).Exec(ctx); err != nil {
				return fmt.Errorf("insert site document: %w", err)
			}
		}

		if _, err := tx.NewDelete().
			Model((*PageRecord)(nil)).
			Where("?TableAlias.project_id = ?", doc.ProjectID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete site pages: %w", err)
		}
		if len(pages) > 0 {
			if _, err := tx.NewInsert().Model(&pages).Exec(ctx); err != nil {
				return fmt.Errorf("insert site pages: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("document saved",
		"project_id", doc.ProjectID.String(),
		"pages", len(pages),
	)
	return nil
}

// Publish marks the stored document as live without touching its content.
func (s *BunStore) Publish(ctx context.Context, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return ErrProjectRequired
	}

	site, err := s.getSite(ctx, projectID)
	if err != nil {
		return err
	}

	now := s.clock()
	site.Published = true
	site.PublishedAt = &now
	site.UpdatedAt = now
	if _, err := s.sites.Update(ctx, site,
		repository.UpdateByID(site.ID.String()),
		repository.UpdateColumns(
			"published",
			"published_at",
			"updated_at",
		),
	); err != nil {
		return mapRepositoryError(err, "site document", projectID)
	}

	s.logger.Info("document published", "project_id", projectID.String())
	return nil
}

// Delete removes the document and its pages.
func (s *BunStore) Delete(ctx context.Context, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return ErrProjectRequired
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*PageRecord)(nil)).
			Where("?TableAlias.project_id = ?", projectID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete site pages: %w", err)
		}

		result, err := tx.NewDelete().
			Model((*SiteRecord)(nil)).
			Where("?TableAlias.project_id = ?", projectID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete site document: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("site document delete rows affected: %w", err)
		}
		if affected == 0 {
			return &DocumentNotFoundError{ProjectID: projectID}
		}
		return nil
	})
}

func (s *BunStore) getSite(ctx context.Context, projectID uuid.UUID) (*SiteRecord, error) {
	records, _, err := s.sites.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.project_id = ?", projectID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "site document", projectID)
	}
	if len(records) == 0 {
		return nil, &DocumentNotFoundError{ProjectID: projectID}
	}
	return records[0], nil
}

func mapRepositoryError(err error, resource string, projectID uuid.UUID) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &DocumentNotFoundError{ProjectID: projectID}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
