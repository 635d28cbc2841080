// Package jsonfile implements the JSON-file storage backend for till.
//
// Each collection is a single JSON array file under the data directory.
// Every read loads the whole file and every mutation rewrites the whole
// file, so sequential callers see a consistent last-write-wins view. There
// is no locking and no cross-collection transaction: the backend is built
// for a single logical writer, and a fault between a ledger write and its
// inventory reconciliation leaves the two collections to disagree.
package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/till/pkg/types"
)

// Collection file names under the data directory.
const (
	catalogFile   = "catalog.txt"
	inventoryFile = "inventory.txt"
	salesFile     = "sales.txt"
)

// collectionFiles lists every persisted collection, in the order backup
// and restore walk them.
var collectionFiles = []string{catalogFile, inventoryFile, salesFile}

// Store is the JSON-file backend. The zero value is unopened; call Open
// with a Config before using the component accessors.
type Store struct {
	open   bool
	config types.Config
	lastID int64
}

// New creates an unopened Store.
func New() *Store {
	return &Store{}
}

// Open prepares the data directory and creates any missing collection
// files with an empty array. Returns ErrAlreadyOpen if called while open.
func (s *Store) Open(config types.Config) error {
	if s.open {
		return types.ErrAlreadyOpen
	}
	if err := config.Validate(); err != nil {
		return err
	}
	config = config.WithDefaults()

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	s.config = config

	for _, name := range collectionFiles {
		if err := s.ensureCollection(name); err != nil {
			return err
		}
	}

	s.open = true
	return nil
}

// Close releases the store. Idempotent; there are no held resources beyond
// the open flag, since every operation opens and closes its own files.
func (s *Store) Close() error {
	s.open = false
	return nil
}

// Catalog returns the catalog store.
func (s *Store) Catalog() types.Catalog { return &catalog{s: s} }

// Inventory returns the inventory ledger.
func (s *Store) Inventory() types.Inventory { return &inventory{s: s} }

// Sales returns the sales ledger.
func (s *Store) Sales() types.Sales { return &salesLedger{s: s} }

// Summaries returns the aggregation engine.
func (s *Store) Summaries() types.Summaries { return &summaries{s: s} }

// Backups returns the snapshot manager.
func (s *Store) Backups() types.Backups { return &backups{s: s} }

// path returns the absolute location of a collection file.
func (s *Store) path(name string) string {
	return filepath.Join(s.config.DataDir, name)
}

// nextID returns a millisecond wall-clock identifier. Two records created
// within the same millisecond would collide, so an identifier at or below
// the previously issued one is bumped to previous+1.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
