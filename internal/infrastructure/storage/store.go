package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Collection names owned by the store.
const (
	CollectionDepartments  = "departments"
	CollectionDoctors      = "doctors"
	CollectionPatients     = "patients"
	CollectionAppointments = "appointments"

	KeyLastRegisteredPatient = "last_registered_patient"
)

// Store persists named collections as JSON files under a single data
// directory. Collections are read and written wholesale; there are no
// partial-record updates and no transactions across collections.
type Store struct {
	fs  afero.Fs
	dir string
	log *logrus.Logger
}

func NewStore(fs afero.Fs, dir string, log *logrus.Logger) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{fs: fs, dir: dir, log: log}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load decodes the named collection into out. An absent or unparsable
// payload leaves out untouched and returns nil: corruption is recoverable
// and degrades to an empty collection, never a failure.
func (s *Store) Load(name string, out any) error {
	raw, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warnf("discarding corrupt payload for %q: %v", name, err)
		return nil
	}
	return nil
}

// Save marshals v and fully replaces the named collection. Durable on
// return.
func (s *Store) Save(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path(name), raw, 0o644)
}

// Exists reports whether the named collection has ever been written.
func (s *Store) Exists(name string) (bool, error) {
	return afero.Exists(s.fs, s.path(name))
}

// Ensure guarantees the named collection exists and holds a JSON array,
// writing an empty one when absent or malformed. Valid existing data is
// never touched.
func (s *Store) Ensure(name string) error {
	raw, err := afero.ReadFile(s.fs, s.path(name))
	if err == nil {
		var arr []json.RawMessage
		if json.Unmarshal(raw, &arr) == nil {
			return nil
		}
		s.log.Warnf("resetting malformed collection %q", name)
	} else if !os.IsNotExist(err) {
		return err
	}
	return s.Save(name, []json.RawMessage{})
}
