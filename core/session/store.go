package session

// Entry is the persisted (token, user) pair. A store must never let a later
// Load observe a partial write.
type Entry struct {
	Token string `json:"hausasoft_token"`
	User  User   `json:"hausasoft_user"`
}

func (e Entry) IsZero() bool { return e.Token == "" && e.User.IsZero() }

// Store is the durable boundary the session survives process restarts
// through. It is the single source of truth for rehydration; the Manager's
// in-memory session is a cache of it.
//
// Save persists the pair atomically. Load reports ok=false for an empty
// store and self-heals on a corrupt or partial payload: the offending entry
// is cleared and the store behaves as empty. Clear is idempotent.
type Store interface {
	Save(e Entry) error
	Load() (Entry, bool)
	Clear() error
}
