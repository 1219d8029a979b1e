package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// NewGeminiClient creates a Gemini API client from an API key.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// ImageConfig carries the image geometry for one generation call.
type ImageConfig struct {
	AspectRatio string // e.g. "16:9"
	Resolution  string // e.g. "2K"
}

// ImageOutput is the usable portion of one remote response: at most one
// image part plus any accompanying text. Text parts are informational only.
type ImageOutput struct {
	ImageData []byte
	MIMEType  string
	Text      string
}

// ImageModel is the remote collaborator that renders a text prompt into an
// image. Implementations return an error for transport or API failures and
// an ImageOutput (possibly with no image data) for completed responses.
type ImageModel interface {
	GenerateImage(ctx context.Context, promptText string, cfg ImageConfig) (*ImageOutput, error)
}

// GeminiModel calls the Gemini image model through the SDK.
type GeminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel wraps a client for the given image model ID.
func NewGeminiModel(client *genai.Client, model string) *GeminiModel {
	if model == "" {
		model = GetModelName()
	}
	return &GeminiModel{client: client, model: model}
}

// GenerateImage sends the prompt with TEXT+IMAGE response modalities and the
// requested geometry. Thinking is disabled for image generation.
func (m *GeminiModel) GenerateImage(ctx context.Context, promptText string, cfg ImageConfig) (*ImageOutput, error) {
	log.Debug().
		Str("model", m.model).
		Int("prompt_length", len(promptText)).
		Str("aspect_ratio", cfg.AspectRatio).
		Str("resolution", cfg.Resolution).
		Msg("Starting Gemini image generation call")

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: cfg.AspectRatio,
			ImageSize:   cfg.Resolution,
		},
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	}

	startTime := time.Now()
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(promptText), config)
	duration := time.Since(startTime)

	if err != nil {
		log.Error().Err(err).Dur("duration", duration).Msg("Gemini image generation call failed")
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Warn().Dur("duration", duration).Msg("Received empty response from Gemini")
		return &ImageOutput{}, nil
	}

	// At most one part is treated as the usable image; the rest is text.
	out := &ImageOutput{}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 && out.ImageData == nil {
			out.ImageData = part.InlineData.Data
			out.MIMEType = part.InlineData.MIMEType
			continue
		}
		if part.Text != "" {
			out.Text += part.Text
		}
	}

	log.Debug().
		Int("image_bytes", len(out.ImageData)).
		Int("text_length", len(out.Text)).
		Dur("duration", duration).
		Msg("Gemini image generation call complete")

	return out, nil
}
