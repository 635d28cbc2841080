// Package types defines the entity schema, configuration, storage
// interfaces, and standard errors for the till data layer.
//
// The entities are the sellable catalog, per-name stock records, and the
// append-only sales ledger; DailySummary is derived from the ledger and is
// never persisted. Store implementations live under internal/ and are
// constructed through pkg/jsonfile.
package types
