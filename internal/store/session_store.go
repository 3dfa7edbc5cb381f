package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"healthquest/backend/internal/model"
	"healthquest/backend/internal/repository"
)

// titleLimit is how many leading characters of the opening message become
// the session title.
const titleLimit = 40

// fallbackTitle names sessions whose opening message carries only an image.
const fallbackTitle = "Image Query"

type SessionStore struct {
	mu         sync.RWMutex
	slots      repository.Store
	collection model.SessionCollection
}

func NewSessionStore(slots repository.Store) *SessionStore {
	return &SessionStore{slots: slots}
}

// Load reads the persisted collection. It fails soft to an empty
// collection on missing or malformed data, and clears an active id that
// no longer references an existing session.
func (s *SessionStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.slots.Get(ctx, SlotChatHistory)
	if err != nil {
		if err != repository.ErrNotFound {
			slog.Warn("Failed to load chat history, starting empty", "error", err)
		}
		s.collection = model.SessionCollection{}
		return
	}

	var collection model.SessionCollection
	if err := json.Unmarshal([]byte(raw), &collection); err != nil {
		slog.Warn("Malformed persisted chat history, starting empty", "error", err)
		s.collection = model.SessionCollection{}
		return
	}

	if collection.ActiveID != nil && findSession(collection.Sessions, *collection.ActiveID) < 0 {
		slog.Warn("Persisted active session no longer exists, clearing it", "session_id", *collection.ActiveID)
		collection.ActiveID = nil
	}
	s.collection = collection
}

// Collection returns a snapshot copy of the whole collection.
func (s *SessionStore) Collection() model.SessionCollection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := model.SessionCollection{Sessions: make([]model.ChatSession, len(s.collection.Sessions))}
	for i, sess := range s.collection.Sessions {
		out.Sessions[i] = copySession(sess)
	}
	if s.collection.ActiveID != nil {
		id := *s.collection.ActiveID
		out.ActiveID = &id
	}
	return out
}

// Get returns a copy of the named session.
func (s *SessionStore) Get(sessionID string) (model.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := findSession(s.collection.Sessions, sessionID)
	if idx < 0 {
		return model.ChatSession{}, false
	}
	return copySession(s.collection.Sessions[idx]), true
}

// Exists reports whether the named session is still in the collection.
func (s *SessionStore) Exists(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findSession(s.collection.Sessions, sessionID) >= 0
}

// ActiveID returns the active session id, or nil when no session is
// selected.
func (s *SessionStore) ActiveID() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.collection.ActiveID == nil {
		return nil
	}
	id := *s.collection.ActiveID
	return &id
}

// CreateSession mints a new session from its opening message, derives the
// immutable title, prepends it to the collection, and returns the new id.
func (s *SessionStore) CreateSession(ctx context.Context, opening model.Message) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := model.ChatSession{
		ID:       uuid.NewString(),
		Title:    deriveTitle(opening),
		Messages: []model.Message{opening},
	}
	s.collection.Sessions = append([]model.ChatSession{session}, s.collection.Sessions...)
	s.persistLocked(ctx)
	return session.ID
}

// AppendMessage appends to the named session. It is a silent no-op when
// the session no longer exists, which guards against a response arriving
// after the user deleted the session.
func (s *SessionStore) AppendMessage(ctx context.Context, sessionID string, msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := findSession(s.collection.Sessions, sessionID)
	if idx < 0 {
		return
	}
	s.collection.Sessions[idx].Messages = append(s.collection.Sessions[idx].Messages, msg)
	s.persistLocked(ctx)
}

// DeleteSession removes the session. Deleting the active session clears
// the active id.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := findSession(s.collection.Sessions, sessionID)
	if idx < 0 {
		return
	}
	if s.collection.ActiveID != nil && *s.collection.ActiveID == sessionID {
		s.collection.ActiveID = nil
	}
	s.collection.Sessions = append(s.collection.Sessions[:idx], s.collection.Sessions[idx+1:]...)
	s.persistLocked(ctx)
}

// SetActive selects a session, or clears the selection when sessionID is
// nil. Selecting an unknown session is rejected.
func (s *SessionStore) SetActive(ctx context.Context, sessionID *string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == nil {
		s.collection.ActiveID = nil
		s.persistLocked(ctx)
		return true
	}
	if findSession(s.collection.Sessions, *sessionID) < 0 {
		return false
	}
	id := *sessionID
	s.collection.ActiveID = &id
	s.persistLocked(ctx)
	return true
}

// persistLocked writes the whole collection to its slot. Failure is
// logged and swallowed; the in-memory state remains authoritative.
func (s *SessionStore) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.collection)
	if err != nil {
		slog.Error("Failed to marshal chat history", "error", err)
		return
	}
	if err := s.slots.Set(ctx, SlotChatHistory, string(raw)); err != nil {
		slog.Warn("Failed to persist chat history", "error", err)
	}
}

func deriveTitle(opening model.Message) string {
	runes := []rune(opening.Text)
	switch {
	case len(runes) == 0:
		return fallbackTitle
	case len(runes) > titleLimit:
		return string(runes[:titleLimit]) + "..."
	default:
		return opening.Text
	}
}

func findSession(sessions []model.ChatSession, sessionID string) int {
	for i := range sessions {
		if sessions[i].ID == sessionID {
			return i
		}
	}
	return -1
}

func copySession(sess model.ChatSession) model.ChatSession {
	out := sess
	out.Messages = make([]model.Message, len(sess.Messages))
	copy(out.Messages, sess.Messages)
	return out
}
