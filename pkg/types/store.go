package types

import "errors"

// Store is the single entry point to the persisted collections. Callers
// open it with a Config, use the component accessors, and close it when
// done.
//
// A Store assumes one logical writer invoking operations sequentially.
// Every mutation reads and rewrites its whole collection before returning,
// so sequential callers always observe a last-write-wins view; concurrent
// writers are not supported and not defended against.
type Store interface {
	// Open prepares the data directory, creating it and empty collection
	// files as needed. Returns ErrAlreadyOpen if called while open.
	Open(config Config) error

	// Close releases the store. Idempotent: multiple calls succeed.
	// After Close, component operations return ErrStoreClosed.
	Close() error

	// Catalog returns the catalog store.
	Catalog() Catalog

	// Inventory returns the inventory ledger.
	Inventory() Inventory

	// Sales returns the sales ledger.
	Sales() Sales

	// Summaries returns the aggregation engine over the sales ledger.
	Summaries() Summaries

	// Backups returns the snapshot manager for the persisted collections.
	Backups() Backups
}

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
)

// Operation errors.
var (
	ErrDuplicateName    = errors.New("an item with this name already exists")
	ErrNotFound         = errors.New("item not found")
	ErrInvalidName      = errors.New("name must not be empty")
	ErrBackupIncomplete = errors.New("backup snapshot incomplete")
)

// Catalog owns the set of sellable items.
type Catalog interface {
	// List returns all catalog items in unspecified order. An empty
	// catalog yields an empty slice, never an error.
	List() ([]CatalogItem, error)

	// Add persists a new item. The name must be non-empty and unique
	// across the catalog (exact, case-sensitive match). Add assigns the
	// identifier and timestamps, applies DefaultCategory when none is
	// given, and returns the stored item. When the candidate carries an
	// initial stock hint, the hinted quantity is seeded into the
	// inventory ledger as an addition after the item is persisted.
	Add(item CatalogItem) (CatalogItem, error)

	// Update merges the patch into the item with the given identifier and
	// stamps the update time. Fields the patch leaves nil keep their
	// current values. Returns ErrNotFound if no item has that identifier.
	// The patched name is not re-checked for uniqueness; callers that
	// rename items are responsible for avoiding duplicates.
	Update(id int64, patch CatalogPatch) (CatalogItem, error)

	// Delete removes the item with the given identifier. Returns
	// ErrNotFound if absent. The item's inventory record, if any, is
	// left untouched.
	Delete(id int64) error
}

// Inventory owns per-name stock quantities.
type Inventory interface {
	// List returns all inventory records.
	List() ([]InventoryRecord, error)

	// Adjust is the only way stock quantities change. When addition is
	// true the delta is added, creating the record if the name is not yet
	// tracked. When addition is false the delta is subtracted and the
	// result clamped at zero; a decrement for an untracked name is a
	// no-op. The touched record's update time is stamped.
	Adjust(name string, delta int, addition bool) error
}

// Sales owns the append-only history of completed transactions.
type Sales interface {
	// List returns all sale records, or only those whose Date equals the
	// given calendar day when date is non-empty.
	List(date string) ([]Sale, error)

	// Record appends a sale to the ledger. A zero identifier, timestamp,
	// or date is filled in (the date defaults to the current calendar
	// day). After the sale is persisted, inventory is decremented for
	// every line item; a failure there is returned to the caller but the
	// sale stays recorded. Sales are immutable: there is no update or
	// delete.
	Record(sale Sale) (Sale, error)
}

// Summaries computes aggregates from the sales ledger.
type Summaries interface {
	// Daily returns the summary for the given calendar day, scanning the
	// full ledger on every call. An empty date means today. A day with no
	// sales yields a zero-valued summary with an empty item map.
	Daily(date string) (DailySummary, error)
}

// Backups copies the persisted collections to and from timestamped
// snapshots. Snapshots are plain file copies, taken one collection at a
// time; they are not atomic across collections.
type Backups interface {
	// Create copies each existing collection file to the backup directory
	// under a shared compact timestamp and returns that timestamp.
	Create() (string, error)

	// Restore copies the snapshot files for the given timestamp over the
	// live collections. All three snapshots must exist, otherwise
	// ErrBackupIncomplete is returned and live data is untouched. A fresh
	// backup of the live data is taken before anything is overwritten.
	Restore(timestamp string) error

	// List returns the distinct snapshot timestamps, newest first.
	List() ([]string, error)
}
