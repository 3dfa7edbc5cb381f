package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	app_errors "healthquest/backend/internal/errors"
	"healthquest/backend/internal/model"
)

// systemInstruction pins the assistant's persona: PubMed-only evidence,
// Markdown formatting, no disclaimers.
const systemInstruction = "You are HealthQuestAI, an expert health and nutrition assistant. " +
	"Your SOLE function is to provide health information based EXCLUSIVELY on scientific evidence from PubMed (pubmed.ncbi.nlm.nih.gov). " +
	"You MUST use the provided search tool to find and summarize relevant studies from PubMed ONLY. " +
	"Your answers must be meticulously tailored to the user's provided profile. " +
	"When answering, you must synthesize information from multiple PubMed studies. " +
	"Do not use any other sources or your own general knowledge. " +
	"If no relevant information is found on PubMed, you must state that you could not find relevant studies on PubMed for the query. " +
	"Adopt a clear, knowledgeable, and direct tone. Do NOT include any medical disclaimers. " +
	"Format your response using Markdown for clarity. Use headings, **bolding** for key terms, and bulleted or numbered lists to structure the information effectively."

// apologyText is the soft-failure reply for any backend error.
const apologyText = "Sorry, I encountered an error trying to get a response. Please check your API key and try again."

type GeminiProvider struct {
	apiKey string
	model  string

	initOnce sync.Once
	initErr  error
	client   *genai.Client
}

// NewGeminiProvider builds a provider for the named Gemini model. It
// accepts an empty api key so the server can start unconfigured; each
// Generate call then fails fast with ErrMissingAPIKey.
func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey, model: modelName}
}

// Generate asks Gemini the user's question, personalized with the
// profile and grounded by the search tool. Transport and response
// failures are absorbed into an apology message; only a missing
// credential is returned as an error, before any network I/O.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string, image *model.ImageData, profile model.UserProfile) (model.Message, error) {
	if p.apiKey == "" {
		return model.Message{}, app_errors.ErrMissingAPIKey
	}

	p.initOnce.Do(func() {
		p.client, p.initErr = genai.NewClient(ctx, &genai.ClientConfig{APIKey: p.apiKey})
	})
	if p.initErr != nil {
		slog.Error("Failed to create Gemini client", "error", p.initErr)
		return apologyMessage(), nil
	}

	var parts []*genai.Part
	if image != nil {
		data, err := base64.StdEncoding.DecodeString(image.Data)
		if err != nil {
			slog.Error("Failed to decode image payload for Gemini request", "error", err)
			return apologyMessage(), nil
		}
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: image.MIMEType, Data: data}})
	}
	parts = append(parts, genai.NewPartFromText(buildPrompt(prompt, profile)))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		slog.Error("Gemini request failed", "error", err)
		return apologyMessage(), nil
	}

	return messageFromResponse(resp), nil
}

// buildPrompt composes the text part: the profile block when one exists,
// then the instruction line and the user's question.
func buildPrompt(prompt string, profile model.UserProfile) string {
	return formatUserProfile(profile) +
		"\nBased on the user's profile and information from PubMed, answer the following health question. Provide citations where possible.\n\nQuestion: " +
		prompt
}

// formatUserProfile renders the labeled profile block, listing only
// non-empty attributes. It returns "" for an empty profile so the block
// is omitted entirely.
func formatUserProfile(profile model.UserProfile) string {
	var b strings.Builder
	b.WriteString("User Profile:\n")
	writeAttr := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "- %s: %s\n", label, value)
		}
	}
	writeAttr("Name", profile.Name)
	writeAttr("Age", profile.Age)
	writeAttr("Height", profile.Height)
	writeAttr("Weight", profile.Weight)
	writeAttr("Daily Steps Goal", profile.Steps)
	writeAttr("Notes", profile.Notes)

	if b.String() == "User Profile:\n" {
		return ""
	}
	return b.String()
}

// messageFromResponse maps a Gemini reply to a chat message: the
// concatenated text parts plus the grounding citations that carry a web
// reference.
func messageFromResponse(resp *genai.GenerateContentResponse) model.Message {
	return model.Message{
		Role:      model.RoleModel,
		Text:      extractText(resp),
		Sources:   extractSources(resp),
		Timestamp: time.Now().UTC(),
	}
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				text.WriteString(part.Text)
			}
		}
	}
	return text.String()
}

func extractSources(resp *genai.GenerateContentResponse) []model.GroundingSource {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var sources []model.GroundingSource
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		sources = append(sources, model.GroundingSource{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return sources
}

func apologyMessage() model.Message {
	return model.Message{Role: model.RoleModel, Text: apologyText, Timestamp: time.Now().UTC()}
}
