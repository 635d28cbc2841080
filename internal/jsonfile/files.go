// Collection file read/write helpers. Writes go through a temp file and
// rename in the collection's directory, so a crashed write never leaves a
// half-serialized collection behind.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// emptyCollection is the encoding of a collection with no records.
var emptyCollection = []byte("[]")

// readCollection loads a collection file into dst, which must be a pointer
// to a slice. A missing or empty file reads as an empty collection; the
// file is (re)created so later writes have a directory to rename into. An
// unparseable file is set aside under a quarantine name, replaced with an
// empty collection, and the read reports empty. Corruption is recovered
// from, never surfaced.
func (s *Store) readCollection(name string, dst any) error {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.ensureCollection(name); err != nil {
			return err
		}
		data = emptyCollection
	} else if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		data = emptyCollection
	}

	if err := json.Unmarshal(data, dst); err != nil {
		if err := s.quarantine(name); err != nil {
			return err
		}
		if err := s.writeRaw(name, emptyCollection); err != nil {
			return err
		}
		return json.Unmarshal(emptyCollection, dst)
	}
	return nil
}

// writeCollection serializes records and rewrites the collection file in
// full. The two-space indent keeps the files readable by hand.
func (s *Store) writeCollection(name string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return s.writeRaw(name, data)
}

// writeRaw writes data to the collection file using the temp-file, sync,
// rename pattern.
func (s *Store) writeRaw(name string, data []byte) error {
	path := s.path(name)
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", name, err)
	}
	return nil
}

// ensureCollection creates the collection file with an empty array if it
// does not exist.
func (s *Store) ensureCollection(name string) error {
	_, err := os.Stat(s.path(name))
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", name, err)
	}
	return s.writeRaw(name, emptyCollection)
}

// quarantine moves an unreadable collection file aside so its content can
// be recovered by hand. The suffix is collision-resistant: two corruptions
// of the same file must not overwrite each other's quarantined copy.
func (s *Store) quarantine(name string) error {
	path := s.path(name)
	aside := fmt.Sprintf("%s.corrupt-%s", path, uuid.NewString())
	if err := os.Rename(path, aside); err != nil {
		return fmt.Errorf("quarantining %s: %w", name, err)
	}
	return nil
}
