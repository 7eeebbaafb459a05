package storage

import internalstorage "github.com/draftforge/go-sitegen/internal/storage"

// Store persists website documents keyed by project id.
type Store = internalstorage.Store

// MemoryStore keeps documents in process memory.
type MemoryStore = internalstorage.MemoryStore

// BunStore persists documents through bun.
type BunStore = internalstorage.BunStore

// DocumentNotFoundError indicates no stored document exists for a project.
type DocumentNotFoundError = internalstorage.DocumentNotFoundError

var ErrProjectRequired = internalstorage.ErrProjectRequired

// NewMemoryStore constructs an empty in-memory store.
var NewMemoryStore = internalstorage.NewMemoryStore

// NewBunStore constructs a Store backed by a bun database.
var NewBunStore = internalstorage.NewBunStore
