package bot

import (
	"sync"

	"safex/models"
)

// SessionStore keeps the active conversations, keyed by conversation id.
// Sessions are created lazily on first contact and only ever touched by
// their own conversation's turns.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*models.Session)}
}

// GetOrCreate returns the session for id, creating it when missing. The
// second result reports whether this contact is the first one.
func (st *SessionStore) GetOrCreate(id string) (*models.Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s, false
	}
	s := &models.Session{ID: id, Stage: models.StageLanguage}
	st.sessions[id] = s
	return s, true
}

// Delete drops a conversation entirely, e.g. when its transport disconnects.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len reports the number of active conversations.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
