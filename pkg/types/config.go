package types

import (
	"errors"
	"path/filepath"
	"strings"
)

// DefaultDBFile is the database file name used when Config.DBFile is empty.
const DefaultDBFile = "ice_cream_parlor.db"

// Config holds backend selection and the location of the database file.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
	DBFile  string `json:"db_file" yaml:"db_file"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDBFileInvalid  = errors.New("db file must be a bare file name")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty DBFile is valid and means
// DefaultDBFile.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.DBFile != "" && (strings.ContainsAny(c.DBFile, `/\`) || c.DBFile == "." || c.DBFile == "..") {
		return ErrDBFileInvalid
	}
	return nil
}

// DBPath returns the database file path. An empty DataDir means the
// current working directory.
func (c Config) DBPath() string {
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	name := c.DBFile
	if name == "" {
		name = DefaultDBFile
	}
	return filepath.Join(dataDir, name)
}
