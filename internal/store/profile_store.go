// Package store holds the two application stores: the user profile and
// the session collection. Each is a JSON snapshot in one persistence
// slot, loaded once at startup and replaced wholesale on every change.
// The in-memory copy stays authoritative: persistence failures are
// logged and swallowed, never surfaced to the user.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"healthquest/backend/internal/model"
	"healthquest/backend/internal/repository"
)

// Slot keys in the persistence substrate.
const (
	SlotChatHistory = "chatHistory"
	SlotUserProfile = "userProfile"
)

type ProfileStore struct {
	mu      sync.RWMutex
	slots   repository.Store
	profile model.UserProfile
}

func NewProfileStore(slots repository.Store) *ProfileStore {
	return &ProfileStore{slots: slots}
}

// Load reads the persisted profile. It fails soft: missing or malformed
// data leaves the all-blank default in place.
func (s *ProfileStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.slots.Get(ctx, SlotUserProfile)
	if err != nil {
		if err != repository.ErrNotFound {
			slog.Warn("Failed to load user profile, starting blank", "error", err)
		}
		s.profile = model.UserProfile{}
		return
	}

	var profile model.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		slog.Warn("Malformed persisted user profile, starting blank", "error", err)
		s.profile = model.UserProfile{}
		return
	}
	s.profile = profile
}

// Get returns the current profile.
func (s *ProfileStore) Get() model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Save replaces the profile in full and persists it. A persistence
// failure is logged; the in-memory profile is still updated.
func (s *ProfileStore) Save(ctx context.Context, profile model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile

	raw, err := json.Marshal(profile)
	if err != nil {
		slog.Error("Failed to marshal user profile", "error", err)
		return
	}
	if err := s.slots.Set(ctx, SlotUserProfile, string(raw)); err != nil {
		slog.Warn("Failed to persist user profile", "error", err)
	}
}

// IsEmpty reports whether every profile attribute is blank after
// trimming whitespace.
func IsEmpty(p model.UserProfile) bool {
	for _, v := range []string{p.Name, p.Age, p.Height, p.Weight, p.Steps, p.Notes} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
