package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from configuration, never hard-coded.
func NewGeminiProvider(ctx context.Context, apiKey, model string, temperature float64) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: gemini: missing api key", ErrUnauthorized)
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: float32(temperature),
	}, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// Complete maps the system instruction onto SystemInstruction and replays earlier turns
// as chat history before sending the last one.
func (p *GeminiProvider) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if len(prompt.Messages) == 0 {
		return "", fmt.Errorf("%w: gemini: empty prompt", ErrProvider)
	}

	// GenerativeModel carries per-request settings, so build one per call.
	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(p.temperature)
	if prompt.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(prompt.System)}}
	}

	cs := model.StartChat()
	last := prompt.Messages[len(prompt.Messages)-1]
	for _, m := range prompt.Messages[:len(prompt.Messages)-1] {
		cs.History = append(cs.History, &genai.Content{
			Role:  geminiRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini: API returned empty candidates", ErrProvider)
	}

	text := joinText(resp.Candidates[0].Content.Parts)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: gemini: API returned empty text parts", ErrProvider)
	}
	return text, nil
}

// joinText concatenates the text parts as received; non-text parts are skipped.
func joinText(parts []genai.Part) string {
	var b strings.Builder
	for _, part := range parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}

func geminiRole(r Role) string {
	if r == RoleAssistant {
		return "model"
	}
	return "user"
}

// classifyGeminiError maps SDK errors onto the package sentinels.
// An invalid key comes back as INVALID_ARGUMENT with reason API_KEY_INVALID.
func classifyGeminiError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: gemini: %w", ErrTimeout, err)
	}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Reason() == "API_KEY_INVALID",
			apiErr.HTTPCode() == http.StatusUnauthorized,
			apiErr.HTTPCode() == http.StatusForbidden,
			apiErr.GRPCStatus().Code() == codes.Unauthenticated,
			apiErr.GRPCStatus().Code() == codes.PermissionDenied:
			return fmt.Errorf("%w: gemini: %w", ErrUnauthorized, err)
		case apiErr.GRPCStatus().Code() == codes.DeadlineExceeded:
			return fmt.Errorf("%w: gemini: %w", ErrTimeout, err)
		}
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) && (gErr.Code == http.StatusUnauthorized || gErr.Code == http.StatusForbidden) {
		return fmt.Errorf("%w: gemini: %w", ErrUnauthorized, err)
	}

	return fmt.Errorf("%w: gemini: generate content: %w", ErrProvider, err)
}
