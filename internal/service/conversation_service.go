package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	app_errors "healthquest/backend/internal/errors"
	"healthquest/backend/internal/llm"
	"healthquest/backend/internal/model"
	"healthquest/backend/internal/store"
)

// profilePromptText is the canned reply for personal questions asked
// before any profile data exists. No backend call is made in that case.
const profilePromptText = "To receive personalized health advice, please fill out your user profile first. " +
	"You can do this by clicking on the 'User profile' button in the sidebar."

// genericErrorText is appended when the backend call fails in an
// unexpected way, including a missing credential.
const genericErrorText = "An error occurred. Please try again."

// personalQueryRe is the personalization-gate heuristic: a standalone
// "I", "my" or "me" anywhere in the question, case-insensitive. The
// substring forms ("mine", "immunity") do not match.
var personalQueryRe = regexp.MustCompile(`(?i)\b(i|my|me)\b`)

type ConversationService struct {
	sessions *store.SessionStore
	profiles *store.ProfileStore
	provider llm.Provider
	loading  atomic.Bool
}

func NewConversationService(sessions *store.SessionStore, profiles *store.ProfileStore, provider llm.Provider) *ConversationService {
	return &ConversationService{sessions: sessions, profiles: profiles, provider: provider}
}

// SendMessage runs one send: validate, append the user message to the
// active (or a newly created) session, then either short-circuit with
// the canned profile prompt or ask the backend, and append the reply if
// the session still exists. It returns the messages it appended.
func (s *ConversationService) SendMessage(ctx context.Context, text string, image *model.ImageData) ([]model.Message, error) {
	// Step 1: validate. Blank text with no image is a no-op.
	if strings.TrimSpace(text) == "" && image == nil {
		return nil, fmt.Errorf("%w: message text or image is required", app_errors.ErrValidation)
	}
	if image != nil {
		if err := validateImage(image); err != nil {
			// Abort before any state mutation.
			return nil, err
		}
	}

	userMessage := model.Message{
		Role:      model.RoleUser,
		Text:      text,
		Image:     image,
		Timestamp: time.Now().UTC(),
	}

	// Step 2-3: resolve the target session and append optimistically.
	var sessionID string
	if active := s.sessions.ActiveID(); active == nil {
		sessionID = s.sessions.CreateSession(ctx, userMessage)
		s.sessions.SetActive(ctx, &sessionID)
	} else {
		sessionID = *active
		s.sessions.AppendMessage(ctx, sessionID, userMessage)
	}

	s.loading.Store(true)
	defer s.loading.Store(false)

	// Step 4: personalization gate.
	if store.IsEmpty(s.profiles.Get()) && personalQueryRe.MatchString(text) {
		canned := model.Message{Role: model.RoleModel, Text: profilePromptText, Timestamp: time.Now().UTC()}
		s.sessions.AppendMessage(ctx, sessionID, canned)
		return []model.Message{userMessage, canned}, nil
	}

	// Step 5: backend call.
	reply, err := s.provider.Generate(ctx, text, image, s.profiles.Get())
	if err != nil {
		if errors.Is(err, app_errors.ErrMissingAPIKey) {
			slog.Error("Send attempted without a configured Gemini API key")
		} else {
			slog.Error("Unexpected error from response provider", "error", err)
		}
		reply = model.Message{Role: model.RoleModel, Text: genericErrorText, Timestamp: time.Now().UTC()}
	}

	// Step 6: append the reply only if the session survived the wait.
	if !s.sessions.Exists(sessionID) {
		slog.Info("Discarding response for deleted session", "session_id", sessionID)
		return []model.Message{userMessage}, nil
	}
	s.sessions.AppendMessage(ctx, sessionID, reply)
	return []model.Message{userMessage, reply}, nil
}

// Loading reports whether a send is in flight. The surface uses it to
// hold off a second send; overlap is still safe via the existence check.
func (s *ConversationService) Loading() bool {
	return s.loading.Load()
}

// ListSessions returns the collection snapshot.
func (s *ConversationService) ListSessions(ctx context.Context) model.SessionCollection {
	return s.sessions.Collection()
}

// GetSession returns one full session.
func (s *ConversationService) GetSession(ctx context.Context, sessionID string) (model.ChatSession, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return model.ChatSession{}, fmt.Errorf("%w: session %s", app_errors.ErrNotFound, sessionID)
	}
	return session, nil
}

// DeleteSession removes a session; removing the active one clears the
// selection.
func (s *ConversationService) DeleteSession(ctx context.Context, sessionID string) {
	s.sessions.DeleteSession(ctx, sessionID)
}

// SetActive selects a session, or clears the selection for a new chat.
func (s *ConversationService) SetActive(ctx context.Context, sessionID *string) error {
	if !s.sessions.SetActive(ctx, sessionID) {
		return fmt.Errorf("%w: session %s", app_errors.ErrNotFound, *sessionID)
	}
	return nil
}

// validateImage checks the composer constraints: a picture MIME type and
// a decodable base64 payload.
func validateImage(image *model.ImageData) error {
	if !strings.HasPrefix(image.MIMEType, "image/") {
		return fmt.Errorf("%w: unsupported attachment type %q", app_errors.ErrValidation, image.MIMEType)
	}
	if _, err := base64.StdEncoding.DecodeString(image.Data); err != nil {
		return fmt.Errorf("%w: could not decode image data", app_errors.ErrValidation)
	}
	return nil
}
