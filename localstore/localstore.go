package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store keeps each named collection in its own JSON file under dir.
// A missing file means an empty collection, matching how the website
// treats an unset browser-storage key.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create local data dir %v: %v", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) Load(key string, records any) error {
	fileBytes, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		os.WriteFile(s.path(key), []byte("[]"), 0644)
		fileBytes = []byte("[]")
	} else if err != nil {
		return err
	}

	err = json.Unmarshal(fileBytes, records)
	if err != nil {
		return err
	}

	return nil
}

func (s *Store) Save(key string, records any) error {
	recordsBytes, err := json.MarshalIndent(records, "", "	")
	if err != nil {
		return err
	}

	err = os.WriteFile(s.path(key), recordsBytes, 0644)
	if err != nil {
		return err
	}

	return nil
}
