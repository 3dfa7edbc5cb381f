package interfaces

import (
	"context"

	"healthquest/backend/internal/model"
	"healthquest/backend/internal/service"
)

// This file defines the interfaces for the core services. The API layer
// depends on these instead of concrete implementations, which decouples
// the layers and makes handlers testable with mocks.

// ConversationService is the contract for chat sessions and sends.
type ConversationService interface {
	SendMessage(ctx context.Context, text string, image *model.ImageData) ([]model.Message, error)
	Loading() bool
	ListSessions(ctx context.Context) model.SessionCollection
	GetSession(ctx context.Context, sessionID string) (model.ChatSession, error)
	DeleteSession(ctx context.Context, sessionID string)
	SetActive(ctx context.Context, sessionID *string) error
}

// ProfileService is the contract for the user profile and the welcome
// surface.
type ProfileService interface {
	Get(ctx context.Context) model.UserProfile
	Save(ctx context.Context, profile model.UserProfile)
	Welcome(ctx context.Context) service.WelcomeResponse
}
