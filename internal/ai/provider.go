package ai

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config selects and configures one provider. Built once at startup.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
}

// New constructs the provider named by cfg.Provider.
func New(ctx context.Context, cfg Config) (LLMProvider, error) {
	var (
		p   LLMProvider
		err error
	)
	switch strings.ToLower(cfg.Provider) {
	case ProviderGroq, "":
		p, err = newOpenAI(OpenAIConfig{
			Name:        ProviderGroq,
			APIKey:      cfg.APIKey,
			Endpoint:    orDefault(cfg.BaseURL, GroqEndpoint),
			Model:       orDefault(cfg.Model, DefaultGroqModel),
			Temperature: cfg.Temperature,
		})
	case ProviderOpenAI:
		p, err = newOpenAI(OpenAIConfig{
			Name:        ProviderOpenAI,
			APIKey:      cfg.APIKey,
			Endpoint:    orDefault(cfg.BaseURL, OpenAIEndpoint),
			Model:       orDefault(cfg.Model, DefaultOpenAIModel),
			Temperature: cfg.Temperature,
		})
	case ProviderGemini:
		var g *GeminiProvider
		if g, err = NewGeminiProvider(ctx, cfg.APIKey, cfg.Model, cfg.Temperature); err == nil {
			p = g
		}
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newOpenAI(cfg OpenAIConfig) (LLMProvider, error) {
	p, err := NewOpenAIProvider(cfg)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
