package generate

import (
	"context"
	"strings"
	"time"
)

// DefaultDelay is how long the mock generation takes.
const DefaultDelay = 3 * time.Second

// Validation messages shown when the URL field is empty.
const (
	URLRequiredTitle   = "GitHub URL Required"
	URLRequiredMessage = "Please enter a valid GitHub repository URL"
)

// ValidateURL trims raw and rejects an empty result.
// No other check is made: any non-blank text is accepted.
func ValidateURL(raw string) (string, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", NewValidationError(URLRequiredTitle, URLRequiredMessage)
	}
	return url, nil
}

// Generator produces documentation for a repository.
// Generate blocks until the work completes or ctx is done.
type Generator interface {
	Generate(ctx context.Context, repoURL string) error
}

// MockGenerator simulates generation by waiting Delay.
// It never fails on its own; the only error is cancellation.
type MockGenerator struct {
	Delay time.Duration
}

// NewMockGenerator creates a mock generator. A non-positive delay
// falls back to DefaultDelay.
func NewMockGenerator(delay time.Duration) *MockGenerator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &MockGenerator{Delay: delay}
}

// Generate waits for the configured delay.
func (g *MockGenerator) Generate(ctx context.Context, repoURL string) error {
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return NewCancelledError(ctx.Err())
	}
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, repoURL string) error

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, repoURL string) error {
	return f(ctx, repoURL)
}
