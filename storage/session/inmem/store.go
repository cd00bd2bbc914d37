// Package inmemstore is a memory-only session.Store for tests and for
// embedders that do not want sessions surviving the process.
package inmemstore

import (
	"sync"

	"github.com/hausasoft/hausasoft-go/core/session"
)

type Store struct {
	sync.Mutex
	entry session.Entry
	has   bool
}

var _ session.Store = (*Store)(nil)

func New() *Store { return &Store{} }

func (s *Store) Save(e session.Entry) error {
	s.Lock()
	defer s.Unlock()
	s.entry, s.has = e, true
	return nil
}

func (s *Store) Load() (session.Entry, bool) {
	s.Lock()
	defer s.Unlock()
	if !s.has || s.entry.Token == "" || s.entry.User.IsZero() {
		return session.Entry{}, false
	}
	return s.entry, true
}

func (s *Store) Clear() error {
	s.Lock()
	defer s.Unlock()
	s.entry, s.has = session.Entry{}, false
	return nil
}
