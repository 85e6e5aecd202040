// Package concierge provides the free-form healthcare assistant chat backed
// by a generative model.
package concierge

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/care-finder/internal/types"
)

// systemPrompt frames every conversation. The assistant navigates users to
// care; it never diagnoses.
const systemPrompt = `You are a helpful healthcare concierge assistant for a healthcare directory platform in Oneida County, New York. Your role is to help users find appropriate healthcare providers, understand healthcare services, and provide general guidance about healthcare options in the area.

Key areas you can help with:
- Finding healthcare providers by specialty, location, or specific needs
- Explaining different types of healthcare services
- Helping users understand when to seek emergency care vs. urgent care vs. regular appointments
- Providing information about common medical specialties
- Offering guidance on healthcare insurance and coverage questions
- Suggesting questions to ask healthcare providers

Important guidelines:
- Always recommend users consult with qualified healthcare professionals for medical advice
- Never provide specific medical diagnoses or treatment recommendations
- Focus on helping users navigate the healthcare system and find appropriate care
- Be empathetic and understanding, as healthcare decisions can be stressful
- If asked about specific providers, suggest using the directory search features
- Keep responses helpful, clear, and concise
- For emergency situations, always recommend calling 911 or going to the nearest emergency room

The healthcare directory includes hospitals, medical clinics, physicians, medical centers, laboratories, and other healthcare providers in the Oneida County area, including cities like Utica, Rome, Oneida, New Hartford, and surrounding communities.`

// fallbackReply is returned when the model produces an empty response
const fallbackReply = "I apologize, but I was unable to generate a response. Please try again."

// historyWindow caps how many prior turns are replayed to the model
const historyWindow = 5

// defaultModel is the model used when none is configured
const defaultModel = "gemini-2.0-flash"

// Client is an abstraction over the concierge model provider
type Client interface {
	// Reply produces the assistant's next message given recent history
	Reply(ctx context.Context, history []types.ChatTurn, message string) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini-backed concierge client
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Reply produces the assistant's next message. Only the most recent turns of
// history are replayed to the model.
func (c *GeminiClient) Reply(ctx context.Context, history []types.ChatTurn, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message is required")
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(500)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	session := model.StartChat()
	session.History = buildHistory(history)

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	text := extractTextFromResponse(resp)
	if text == "" {
		return fallbackReply, nil
	}
	return text, nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// buildHistory converts recent chat turns into model content, keeping only
// the trailing window
func buildHistory(history []types.ChatTurn) []*genai.Content {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := "model"
		if turn.Role == "user" {
			role = "user"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}
	return contents
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
