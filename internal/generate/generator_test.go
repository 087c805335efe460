package generate

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "empty", raw: "", wantErr: true},
		{name: "spaces only", raw: "   ", wantErr: true},
		{name: "tabs and newlines", raw: "\t\n ", wantErr: true},
		{name: "github url", raw: "https://github.com/username/repository", want: "https://github.com/username/repository"},
		{name: "trimmed", raw: "  https://github.com/a/b \n", want: "https://github.com/a/b"},
		{name: "any text accepted", raw: "not a url", want: "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateURL(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if tt.wantErr {
				if !IsValidation(err) {
					t.Errorf("ValidateURL(%q) error should be a validation error, got %v", tt.raw, err)
				}
				if TitleOf(err) != URLRequiredTitle {
					t.Errorf("TitleOf() = %q, want %q", TitleOf(err), URLRequiredTitle)
				}
				if MessageOf(err) != URLRequiredMessage {
					t.Errorf("MessageOf() = %q, want %q", MessageOf(err), URLRequiredMessage)
				}
			}
		})
	}
}

func TestNewMockGenerator_DefaultDelay(t *testing.T) {
	if g := NewMockGenerator(0); g.Delay != DefaultDelay {
		t.Errorf("NewMockGenerator(0).Delay = %v, want %v", g.Delay, DefaultDelay)
	}
	if g := NewMockGenerator(-time.Second); g.Delay != DefaultDelay {
		t.Errorf("NewMockGenerator(-1s).Delay = %v, want %v", g.Delay, DefaultDelay)
	}
	if g := NewMockGenerator(time.Millisecond); g.Delay != time.Millisecond {
		t.Errorf("NewMockGenerator(1ms).Delay = %v, want 1ms", g.Delay)
	}
}

func TestMockGenerator_CompletesAfterDelay(t *testing.T) {
	g := NewMockGenerator(20 * time.Millisecond)

	start := time.Now()
	err := g.Generate(context.Background(), "https://github.com/a/b")
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if elapsed < 20*time.Millisecond {
		t.Errorf("Generate() returned after %v, want at least 20ms", elapsed)
	}
}

func TestMockGenerator_Cancel(t *testing.T) {
	g := NewMockGenerator(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- g.Generate(ctx, "https://github.com/a/b")
	}()

	cancel()

	select {
	case err := <-done:
		if !IsCancelled(err) {
			t.Errorf("Generate() error = %v, want cancellation", err)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Generate() error should wrap context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Generate() did not return after cancel")
	}
}

func TestMockGenerator_DeadlineExceeded(t *testing.T) {
	g := NewMockGenerator(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := g.Generate(ctx, "x")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Generate() error = %v, want deadline exceeded", err)
	}
}

func TestGeneratorFunc(t *testing.T) {
	var gotURL string
	var g Generator = GeneratorFunc(func(ctx context.Context, repoURL string) error {
		gotURL = repoURL
		return NewFailedError("boom", nil)
	})

	err := g.Generate(context.Background(), "https://github.com/a/b")
	if gotURL != "https://github.com/a/b" {
		t.Errorf("GeneratorFunc received %q", gotURL)
	}
	if IsValidation(err) || IsCancelled(err) {
		t.Errorf("unexpected classification for %v", err)
	}
	if TitleOf(err) != "Generation Failed" {
		t.Errorf("TitleOf() = %q, want Generation Failed", TitleOf(err))
	}
}
