package llm

import (
	"context"

	"healthquest/backend/internal/model"
)

// Provider is the interface to the generative backend. Implementations
// absorb their own transport failures and answer with an in-chat error
// message; the only error they may return is a missing-credential error,
// raised before any network call.
type Provider interface {
	Generate(ctx context.Context, prompt string, image *model.ImageData, profile model.UserProfile) (model.Message, error)
}
