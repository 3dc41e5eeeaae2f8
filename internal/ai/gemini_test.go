package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestClassifyGeminiError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "deadline", err: fmt.Errorf("rpc: %w", context.DeadlineExceeded), want: ErrTimeout},
		{name: "googleapi 401", err: &googleapi.Error{Code: http.StatusUnauthorized}, want: ErrUnauthorized},
		{name: "googleapi 403", err: &googleapi.Error{Code: http.StatusForbidden}, want: ErrUnauthorized},
		{name: "googleapi 500", err: &googleapi.Error{Code: http.StatusInternalServerError}, want: ErrProvider},
		{name: "plain", err: errors.New("connection reset"), want: ErrProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyGeminiError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestNewGeminiProvider_MissingKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), "", "", 0)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGeminiRole(t *testing.T) {
	assert.Equal(t, "user", geminiRole(RoleUser))
	assert.Equal(t, "model", geminiRole(RoleAssistant))
}

func TestJoinText_Verbatim(t *testing.T) {
	parts := []genai.Part{
		genai.Text("Day 1: Lou"),
		genai.Text("vre"),
		genai.Text(" "),
		genai.Blob{MIMEType: "image/png", Data: []byte{0x1}},
		genai.Text("and Seine.\n"),
	}
	assert.Equal(t, "Day 1: Louvre and Seine.\n", joinText(parts))
	assert.Empty(t, joinText(nil))
}
