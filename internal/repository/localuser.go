package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"github.com/rahmasleam/Neux-Mena-V5/internal/model"
)

const fallbackUserFile = "nexusmena/user.json"

// FallbackStore persists the local-fallback user record between runs.
type FallbackStore interface {
	Load() (*model.User, error)
	Save(user *model.User) error
	Clear() error
}

// FileFallbackStore keeps the record as a single JSON file under the XDG
// data directory.
type FileFallbackStore struct {
	path string
}

func NewFileFallbackStore() (*FileFallbackStore, error) {
	path, err := xdg.DataFile(fallbackUserFile)
	if err != nil {
		return nil, err
	}
	return &FileFallbackStore{path: path}, nil
}

func (s *FileFallbackStore) Load() (*model.User, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *FileFallbackStore) Save(user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileFallbackStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryFallbackStore is the in-process variant used in tests and when no
// writable data directory exists.
type MemoryFallbackStore struct {
	user *model.User
}

func (s *MemoryFallbackStore) Load() (*model.User, error) {
	return s.user, nil
}

func (s *MemoryFallbackStore) Save(user *model.User) error {
	copied := *user
	s.user = &copied
	return nil
}

func (s *MemoryFallbackStore) Clear() error {
	s.user = nil
	return nil
}
