package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	app_errors "healthquest/backend/internal/errors"
	"healthquest/backend/internal/model"
)

func TestGenerate_FailsFastWithoutAPIKey(t *testing.T) {
	provider := NewGeminiProvider("", "gemini-2.5-flash")

	_, err := provider.Generate(context.Background(), "question", nil, model.UserProfile{})
	assert.ErrorIs(t, err, app_errors.ErrMissingAPIKey)
}

func TestFormatUserProfile(t *testing.T) {
	t.Run("empty profile yields no block", func(t *testing.T) {
		assert.Equal(t, "", formatUserProfile(model.UserProfile{}))
	})

	t.Run("lists only non-empty attributes", func(t *testing.T) {
		got := formatUserProfile(model.UserProfile{Name: "Jane", Steps: "10000"})
		assert.Equal(t, "User Profile:\n- Name: Jane\n- Daily Steps Goal: 10000\n", got)
	})

	t.Run("full profile keeps label order", func(t *testing.T) {
		got := formatUserProfile(model.UserProfile{
			Name: "Jane", Age: "30", Height: "5' 8", Weight: "150 lbs", Steps: "8000", Notes: "vegan",
		})
		want := "User Profile:\n" +
			"- Name: Jane\n" +
			"- Age: 30\n" +
			"- Height: 5' 8\n" +
			"- Weight: 150 lbs\n" +
			"- Daily Steps Goal: 8000\n" +
			"- Notes: vegan\n"
		assert.Equal(t, want, got)
	})
}

func TestBuildPrompt_OmitsBlockForEmptyProfile(t *testing.T) {
	got := buildPrompt("Is fiber good?", model.UserProfile{})
	assert.Equal(t, "\nBased on the user's profile and information from PubMed, answer the following health question. Provide citations where possible.\n\nQuestion: Is fiber good?", got)
}

func TestMessageFromResponse_KeepsOnlyWebCitations(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: "Fiber "}, {Text: "helps."}},
				},
				GroundingMetadata: &genai.GroundingMetadata{
					GroundingChunks: []*genai.GroundingChunk{
						{Web: &genai.GroundingChunkWeb{URI: "https://pubmed.ncbi.nlm.nih.gov/1", Title: "Fiber study"}},
						{Web: nil},
					},
				},
			},
		},
	}

	msg := messageFromResponse(resp)

	assert.Equal(t, model.RoleModel, msg.Role)
	assert.Equal(t, "Fiber helps.", msg.Text)
	require.Len(t, msg.Sources, 1)
	assert.Equal(t, "https://pubmed.ncbi.nlm.nih.gov/1", msg.Sources[0].URI)
	assert.Equal(t, "Fiber study", msg.Sources[0].Title)
}

func TestMessageFromResponse_EmptyResponse(t *testing.T) {
	msg := messageFromResponse(&genai.GenerateContentResponse{})

	assert.Equal(t, model.RoleModel, msg.Role)
	assert.Equal(t, "", msg.Text)
	assert.Empty(t, msg.Sources)
}
