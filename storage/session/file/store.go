// Package filestore persists the session as a single JSON document on disk,
// the CLI equivalent of the web front-end's two localStorage entries. The
// document holds both well-known keys so that token and user can only ever
// be observed together.
package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/hausasoft/hausasoft-go/core"
	"github.com/hausasoft/hausasoft-go/core/session"
)

type Store struct {
	mu   sync.Mutex
	path string
	log  core.Logger
}

var _ session.Store = (*Store)(nil)

func New(path string, logger core.Logger) *Store {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Store{path: path, log: logger}
}

// Save writes the pair as a unit: the document is staged in a temp file and
// renamed over the target, so a crash mid-write leaves either the previous
// pair or the new one, never a mix.
func (s *Store) Save(e session.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "marshalling session entry")
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return errors.Wrap(err, "creating temp session file")
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing session entry")
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return errors.Wrap(err, "restricting session file perms")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp session file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "committing session file")
}

// Load rehydrates the persisted pair. An unparseable document or a partial
// pair (token without user, or the reverse) is treated as corrupt: the entry
// is cleared and the store reports empty.
func (s *Store) Load() (session.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("filestore: reading session file", err)
		}
		return session.Entry{}, false
	}

	var e session.Entry
	if err = json.Unmarshal(data, &e); err != nil {
		s.log.Warn("filestore: corrupt session file; clearing", err)
		s.clearLocked()
		return session.Entry{}, false
	}
	if e.Token == "" || e.User.IsZero() {
		s.log.Warn("filestore: partial session entry; clearing")
		s.clearLocked()
		return session.Entry{}, false
	}
	return e, true
}

// Clear removes the persisted pair. Clearing an already-empty store is a
// no-op, so concurrent or repeated calls are safe.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

func (s *Store) clearLocked() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "clearing session file")
	}
	return nil
}
