// Package jsonfile provides the public constructor for the JSON-file
// storage backend while keeping the implementation internal.
package jsonfile

import (
	internal "github.com/mesh-intelligence/till/internal/jsonfile"
	"github.com/mesh-intelligence/till/pkg/types"
)

// NewStore creates an unopened JSON-file store.
//
// Example:
//
//	store := jsonfile.NewStore()
//	err := store.Open(types.Config{DataDir: "data"})
//	defer store.Close()
func NewStore() types.Store {
	return internal.New()
}
