package types

import (
	"errors"
	"path/filepath"
)

// Config holds the directories a Store operates in. BackupDir defaults to
// DataDir/backups when left empty.
type Config struct {
	DataDir   string `json:"data_dir" yaml:"data_dir"`
	BackupDir string `json:"backup_dir" yaml:"backup_dir"`
}

// Config validation errors.
var ErrDataDirEmpty = errors.New("data dir must not be empty")

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}

// WithDefaults returns a copy of the Config with empty optional fields
// filled in.
func (c Config) WithDefaults() Config {
	if c.BackupDir == "" {
		c.BackupDir = filepath.Join(c.DataDir, "backups")
	}
	return c
}
