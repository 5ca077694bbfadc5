// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/herd-ledger/backend/internal/application/adapter"
	"github.com/herd-ledger/backend/internal/domain/entity"
)

// GeminiService implements adapter.CategorySuggester using Google Gemini. It
// maps imported bank statement rows to farm cost categories.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest returns cost category suggestions for the given statement rows.
func (s *GeminiService) Suggest(ctx context.Context, rows []adapter.StatementRow) ([]adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	// Create client
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	// Configure model for JSON output
	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(rows)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	suggestions, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return suggestions, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(rows []adapter.StatementRow) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at classifying farm operating expenses. Each line below is a bank statement debit from a cattle operation. Assign each row exactly one category from this list:

`)
	for _, category := range entity.CostCategories {
		sb.WriteString("- " + string(category) + "\n")
	}

	sb.WriteString(`
RULES:
- Use only category names from the list, exactly as written (lowercase).
- "feed" covers hay, grain, silage, mineral supplements.
- "veterinary" covers vet clinics, vaccines, medication.
- "transportation" covers hauling, trucking, fuel for livestock transport.
- When uncertain, use "other".

ROWS TO CLASSIFY:
`)
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("- Index: %d, Description: %q, Amount: %s\n", row.RowIndex, row.Description, row.Amount))
	}

	sb.WriteString(`
Respond with a JSON array only, no additional text. Each element:
{"row_index": <index from the list>, "category": "<category name>"}
`)

	return sb.String()
}

// geminiRowSuggestion represents the raw response from Gemini.
type geminiRowSuggestion struct {
	RowIndex int    `json:"row_index"`
	Category string `json:"category"`
}

// parseResponse parses the Gemini response into category suggestions.
// Rows with unknown categories are skipped.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]adapter.CategorySuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	// Get the text content from the response
	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw []geminiRowSuggestion
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	suggestions := make([]adapter.CategorySuggestion, 0, len(raw))
	for _, r := range raw {
		category := entity.CostCategory(strings.ToLower(strings.TrimSpace(r.Category)))
		if !category.IsValid() {
			continue
		}
		suggestions = append(suggestions, adapter.CategorySuggestion{
			RowIndex: r.RowIndex,
			Category: category,
		})
	}

	return suggestions, nil
}
