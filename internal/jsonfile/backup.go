package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mesh-intelligence/till/pkg/types"
)

// backupTimeLayout is the compact timestamp shared by the snapshot files
// of one backup run.
const backupTimeLayout = "20060102_150405"

// backups implements types.Backups as plain file copies of the collection
// files. Snapshots are named {timestamp}_{collection} in the backup
// directory and copied one collection at a time.
type backups struct {
	s *Store
}

func (b *backups) Create() (string, error) {
	if !b.s.open {
		return "", types.ErrStoreClosed
	}
	if err := os.MkdirAll(b.s.config.BackupDir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}

	stamp := time.Now().Format(backupTimeLayout)
	for _, name := range collectionFiles {
		src := b.s.path(name)
		if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return "", fmt.Errorf("checking %s: %w", name, err)
		}
		dst := filepath.Join(b.s.config.BackupDir, stamp+"_"+name)
		if err := copyFile(src, dst); err != nil {
			return "", fmt.Errorf("backing up %s: %w", name, err)
		}
	}
	return stamp, nil
}

func (b *backups) Restore(timestamp string) error {
	if !b.s.open {
		return types.ErrStoreClosed
	}

	// Preflight: every snapshot must exist before live data is touched.
	for _, name := range collectionFiles {
		snap := filepath.Join(b.s.config.BackupDir, timestamp+"_"+name)
		if _, err := os.Stat(snap); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: missing %s", types.ErrBackupIncomplete, filepath.Base(snap))
		} else if err != nil {
			return fmt.Errorf("checking snapshot %s: %w", name, err)
		}
	}

	// Keep a copy of the live data before overwriting it.
	if _, err := b.Create(); err != nil {
		return fmt.Errorf("backing up live data: %w", err)
	}

	for _, name := range collectionFiles {
		snap := filepath.Join(b.s.config.BackupDir, timestamp+"_"+name)
		if err := copyFile(snap, b.s.path(name)); err != nil {
			return fmt.Errorf("restoring %s: %w", name, err)
		}
	}
	return nil
}

func (b *backups) List() ([]string, error) {
	if !b.s.open {
		return nil, types.ErrStoreClosed
	}

	entries, err := os.ReadDir(b.s.config.BackupDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading backup dir: %w", err)
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		for _, name := range collectionFiles {
			if strings.HasSuffix(entry.Name(), "_"+name) {
				seen[strings.TrimSuffix(entry.Name(), "_"+name)] = true
			}
		}
	}

	stamps := make([]string, 0, len(seen))
	for stamp := range seen {
		stamps = append(stamps, stamp)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(stamps)))
	return stamps, nil
}

// copyFile copies src to dst, replacing dst.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
