package seed

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotAuthenticated is returned by Store.Load when no seed is stored.
// Absence of the seed entry is the "not logged in" signal for callers.
var ErrNotAuthenticated = errors.New("seed: no stored seed")

// IsNotAuthenticated reports whether err means no seed is stored.
func IsNotAuthenticated(err error) bool { return errors.Is(err, ErrNotAuthenticated) }

// seedFileName is the fixed key under which the single user seed lives.
const seedFileName = "user.seed"

// Store persists the single user seed on the local filesystem.
//
// Contract:
// - At most one seed is stored per directory, under a fixed name.
// - The seed file is created 0600 inside a 0700 directory.
// - Save refuses to overwrite an existing seed unless told to.
// - Load returns ErrNotAuthenticated when the entry is absent.
type Store struct {
	Directory string
}

// DefaultDirectory returns the per-user seed directory.
func DefaultDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".lumen"), nil
}

// OpenStore returns a Store rooted at directory, or at the default per-user
// directory when directory is empty.
func OpenStore(directory string) (*Store, error) {
	if directory == "" {
		var err error
		directory, err = DefaultDirectory()
		if err != nil {
			return nil, err
		}
	}
	return &Store{Directory: directory}, nil
}

func (st *Store) seedPath() string {
	return filepath.Join(st.Directory, seedFileName)
}

// Save writes the seed, hex encoded, to the store.
func (st *Store) Save(s Seed, overwrite bool) error {
	if err := os.MkdirAll(st.Directory, 0o700); err != nil {
		return err
	}
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(st.seedPath(), flags, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.WriteString(hex.EncodeToString(s[:]) + "\n"); err != nil {
		return err
	}
	return file.Close()
}

// Load reads the stored seed. ErrNotAuthenticated means no seed exists.
func (st *Store) Load() (Seed, error) {
	data, err := os.ReadFile(st.seedPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Seed{}, ErrNotAuthenticated
		}
		return Seed{}, err
	}
	raw, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return Seed{}, err
	}
	return FromBytes(raw)
}

// Clear removes the stored seed. Clearing an empty store is not an error.
func (st *Store) Clear() error {
	err := os.Remove(st.seedPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
