package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	GroqEndpoint   = "https://api.groq.com/openai/v1/chat/completions"
	OpenAIEndpoint = "https://api.openai.com/v1/chat/completions"

	DefaultGroqModel   = "llama-3.3-70b-versatile"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// OpenAIConfig configures any OpenAI-compatible chat completions endpoint.
type OpenAIConfig struct {
	Name        string
	APIKey      string
	Endpoint    string
	Model       string
	Temperature float64
	HTTPClient  *http.Client
}

// OpenAIProvider implements LLMProvider over the OpenAI chat completions wire format,
// which Groq serves unchanged.
type OpenAIProvider struct {
	name        string
	apiKey      string
	endpoint    string
	model       string
	temperature float64
	client      *http.Client
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: %s: missing api key", ErrUnauthorized, cfg.Name)
	}
	if cfg.Name == "" {
		cfg.Name = "openai"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = OpenAIEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	client := cfg.HTTPClient
	if client == nil {
		// Deadlines come from the caller's context.
		client = &http.Client{}
	}
	return &OpenAIProvider{
		name:        cfg.Name,
		apiKey:      cfg.APIKey,
		endpoint:    cfg.Endpoint,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		client:      client,
	}, nil
}

func (p *OpenAIProvider) Name() string { return p.name }

func (p *OpenAIProvider) Close() error { return nil }

// Complete sends one chat completion request and returns the first choice's content.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt Prompt) (string, error) {
	messages := make([]chatMessage, 0, len(prompt.Messages)+1)
	if prompt.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: prompt.System})
	}
	for _, m := range prompt.Messages {
		messages = append(messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}

	reqBody, err := json.Marshal(chatRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: p.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: marshal request: %w", ErrProvider, p.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("%w: %s: build request: %w", ErrProvider, p.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", transportError(p.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError(p.name, err)
	}

	var cr chatResponse
	decodeErr := json.Unmarshal(body, &cr)

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if cr.Error != nil && cr.Error.Message != "" {
			msg = cr.Error.Message
		}
		sentinel := ErrProvider
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			sentinel = ErrUnauthorized
		}
		return "", fmt.Errorf("%w: %s: status %d: %s", sentinel, p.name, resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: %s: unmarshal response: %w", ErrProvider, p.name, decodeErr)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("%w: %s: api error: %s", ErrProvider, p.name, cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%w: %s: empty choices array (raw: %s)", ErrProvider, p.name, body)
	}
	content := cr.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: %s: empty completion", ErrProvider, p.name)
	}
	return content, nil
}
