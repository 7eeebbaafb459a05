package storage

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewSiteRepository(db *bun.DB) repository.Repository[*SiteRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*SiteRecord]{
		NewRecord: func() *SiteRecord { return &SiteRecord{} },
		GetID: func(r *SiteRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *SiteRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "project_id"
		},
		GetIdentifierValue: func(r *SiteRecord) string {
			return r.ProjectID.String()
		},
	})
}

func NewPageRepository(db *bun.DB) repository.Repository[*PageRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PageRecord]{
		NewRecord: func() *PageRecord { return &PageRecord{} },
		GetID: func(r *PageRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *PageRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(r *PageRecord) string {
			return r.Slug
		},
	})
}
