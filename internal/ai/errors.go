package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrProvider covers network failures and non-success provider responses.
	ErrProvider = errors.New("llm provider error")
	// ErrUnauthorized is returned when the provider rejects the credential.
	ErrUnauthorized = errors.New("llm provider rejected credential")
	// ErrTimeout is returned when the call exceeds its deadline.
	ErrTimeout = errors.New("llm provider timeout")
)

// transportError classifies an error raised before a response was received.
func transportError(provider string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s: %w", ErrTimeout, provider, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrProvider, provider, err)
}
