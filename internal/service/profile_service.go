package service

import (
	"context"
	"fmt"

	"healthquest/backend/internal/model"
	"healthquest/backend/internal/store"
)

type ProfileService struct {
	profiles *store.ProfileStore
}

func NewProfileService(profiles *store.ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the current profile. First run yields the all-blank
// default.
func (s *ProfileService) Get(ctx context.Context) model.UserProfile {
	return s.profiles.Get()
}

// Save overwrites the whole profile.
func (s *ProfileService) Save(ctx context.Context, profile model.UserProfile) {
	s.profiles.Save(ctx, profile)
}

// SuggestedPrompt is one example question offered on the empty-chat
// welcome surface.
type SuggestedPrompt struct {
	Title    string `json:"title"`
	Question string `json:"question"`
}

// examplePrompts are the canned welcome-screen suggestions.
var examplePrompts = []SuggestedPrompt{
	{Title: "Muscle Gain", Question: "What is the most optimal thing to eat for muscle gain?"},
	{Title: "Fat Loss", Question: "What foods should I eat to maximize fat loss while preserving muscle?"},
	{Title: "Sleep Quality", Question: "What dietary changes can improve sleep quality according to PubMed?"},
	{Title: "Cognitive Function", Question: "Which nutrients are proven to enhance cognitive function?"},
}

// WelcomeResponse backs the welcome surface: a greeting personalized
// with the profile name when one exists, plus the prompt suggestions.
type WelcomeResponse struct {
	Greeting string            `json:"greeting"`
	Prompts  []SuggestedPrompt `json:"prompts"`
}

// Welcome builds the welcome-screen content.
func (s *ProfileService) Welcome(ctx context.Context) WelcomeResponse {
	greeting := "How can I help you today?"
	if name := s.profiles.Get().Name; name != "" {
		greeting = fmt.Sprintf("Hello, %s! How can I help you today?", name)
	}
	return WelcomeResponse{Greeting: greeting, Prompts: examplePrompts}
}
