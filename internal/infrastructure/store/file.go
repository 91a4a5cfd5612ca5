// Package store provides the durable client-side persistence backends for
// the console: the session file under the user's config directory and an
// in-memory variant for tests and embedding.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/myurl/console/internal/core/domain"
)

const (
	appDirName  = "myurl-console"
	sessionFile = "session.json"
)

// FileStore persists the session as a single JSON document on disk. Writes
// go through a temp file and rename, so the token/profile pair is replaced
// atomically and a crash mid-write cannot leave a partial session behind.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir. An empty dir selects
// the per-user config directory (e.g. ~/.config/myurl-console).
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, appDirName)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get loads the persisted session. Missing, unreadable, or corrupted data
// all read back as an absent session: the store degrades to signed-out
// rather than surfacing an error the caller could not act on.
func (f *FileStore) Get() *domain.Session {
	raw, err := os.ReadFile(f.path())
	if err != nil {
		return nil
	}
	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	if !s.Valid() {
		return nil
	}
	return &s
}

// Set persists the session. Refuses incomplete pairs so no partial state
// can ever be observed on a later Get.
func (f *FileStore) Set(s *domain.Session) error {
	if !s.Valid() {
		return domain.ErrIncompleteSession
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	tmp, err := os.CreateTemp(f.dir, sessionFile+".*")
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path()); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (f *FileStore) path() string {
	return filepath.Join(f.dir, sessionFile)
}
