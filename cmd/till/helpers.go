// Shared helpers for till CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/till/pkg/jsonfile"
	"github.com/mesh-intelligence/till/pkg/types"
)

// openStore resolves the data directory and opens a JSON-file store on it.
// The caller must defer store.Close().
func openStore() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := jsonfile.NewStore()
	cfg := types.Config{
		DataDir:   dataDir,
		BackupDir: configBackupDir,
	}
	if err := store.Open(cfg); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// printResult renders v as indented JSON when --json is set, otherwise via
// the given plain-text fallback.
func printResult(v any, plain func()) error {
	if !flagJSON {
		plain()
		return nil
	}
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// isUserError returns true for failures caused by the request rather than
// the storage layer.
func isUserError(err error) bool {
	return errors.Is(err, types.ErrDuplicateName) ||
		errors.Is(err, types.ErrNotFound) ||
		errors.Is(err, types.ErrInvalidName) ||
		errors.Is(err, types.ErrBackupIncomplete)
}

// parsePrice parses a decimal money value from flag input.
func parsePrice(input string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q: %w", input, err)
	}
	return price, nil
}

// parseLineItem parses a NAME:QTY:PRICE flag value into a line item.
// The name may not contain colons.
func parseLineItem(input string) (types.LineItem, error) {
	parts := strings.Split(input, ":")
	if len(parts) != 3 {
		return types.LineItem{}, fmt.Errorf("invalid line item %q (expected NAME:QTY:PRICE)", input)
	}

	quantity, err := strconv.Atoi(parts[1])
	if err != nil || quantity <= 0 {
		return types.LineItem{}, fmt.Errorf("invalid quantity in %q (expected a positive integer)", input)
	}
	price, err := parsePrice(parts[2])
	if err != nil {
		return types.LineItem{}, err
	}

	return types.LineItem{Name: parts[0], Quantity: quantity, Price: price}, nil
}
