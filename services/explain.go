package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"safex/config"
	"safex/locale"
	"safex/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Global Gemini client instance
var geminiClient *genai.Client

var geminiModel = "gemini-1.5-flash"

const systemInstruction = "You are a product safety expert. You help shoppers understand counterfeit risk."

// InitExplainService initializes the Gemini client using the API key from the config.
func InitExplainService(cfg *config.Config) error {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	geminiClient = client
	if cfg.Gemini.Model != "" {
		geminiModel = cfg.Gemini.Model
	}
	return nil
}

// GenerateExplanation asks the generative backend for a short rationale for
// the given record and tier, in the conversation's language. One request, no
// retry; the caller decides what to show when this fails.
func GenerateExplanation(ctx context.Context, rec models.ProductRecord, tier models.RiskTier, lang locale.Language) (string, error) {
	if geminiClient == nil {
		return "", errors.New("Gemini client not initialized")
	}

	prompt := fmt.Sprintf(
		`You are SAFEX — an AI system that detects counterfeit products.
Data:
- Name: %s
- Description: %s
- Price: %s
- Rating & Reviews: %s
- Seller: %s
- Assessed risk tier: %s
Give short reasons and advice in %s.`,
		rec.Title, rec.Description, rec.Price, rec.RatingReviews, rec.Seller, tier, lang,
	)

	model := geminiClient.GenerativeModel(geminiModel)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate explanation: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no explanation returned")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return cleanModelOutput(string(text)), nil
		}
	}
	return "", errors.New("no text part in explanation response")
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
