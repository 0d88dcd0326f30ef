// Package ai wraps the google.golang.org/genai client behind a small
// interface so the invocation layer can be exercised with fakes.
package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrMalformedDataURI is returned when an inline image cannot be decoded.
var ErrMalformedDataURI = errors.New("malformed data URI")

// Generator issues one generation call and returns the raw response text.
// An empty string with a nil error means the API answered without any text
// content.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error)
}

// GeneratorFactory constructs a Generator for a resolved API key. The
// client is rebuilt per request so that admin key rotations take effect
// immediately.
type GeneratorFactory func(ctx context.Context, apiKey string) (Generator, error)

// geminiGenerator is the production Generator backed by the Gemini API.
type geminiGenerator struct {
	client *genai.Client
}

// NewGeminiGenerator is the production GeneratorFactory. An empty key is
// passed through; the first generation call fails with the API's own error.
func NewGeminiGenerator(ctx context.Context, apiKey string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &geminiGenerator{client: client}, nil
}

func (g *geminiGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// DecodeDataURI splits a base64 data URI ("data:image/png;base64,....")
// into its MIME type and raw bytes for use as an inline request part.
func DecodeDataURI(uri string) (mimeType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing data: prefix", ErrMalformedDataURI)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload separator", ErrMalformedDataURI)
	}
	mimeType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return "", nil, fmt.Errorf("%w: only base64 encoding is supported", ErrMalformedDataURI)
	}
	if mimeType == "" {
		return "", nil, fmt.Errorf("%w: missing MIME type", ErrMalformedDataURI)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
	}
	return mimeType, data, nil
}
