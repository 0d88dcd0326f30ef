package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"astroguru-backend-go/internal/ai"
	"astroguru-backend-go/internal/config"
	"astroguru-backend-go/internal/filter"
	"astroguru-backend-go/internal/models"
	"astroguru-backend-go/internal/prompt"
)

// Sampling parameters sent with every generation request.
const (
	readingTemperature = float32(0.7)
	readingTopP        = float32(0.95)
	readingTopK        = float32(40)
)

// fallbackReading is returned when the API answered without any text.
const fallbackReading = `<div class="astro-reading"><p>The stars are silent at this moment. Please try your question again shortly.</p></div>`

var (
	// ErrImageTooLarge is returned when an inline image exceeds the
	// configured byte ceiling. Enforced locally so the external API does
	// not reject the oversized request with an opaque error.
	ErrImageTooLarge = errors.New("inline image exceeds size limit")
	// ErrInvalidChatRole is returned for history turns whose role is
	// neither "user" nor "model".
	ErrInvalidChatRole = errors.New("invalid chat message role")
)

// readingService implements the ReadingService interface. Each operation
// performs exactly one outbound generation call and no local persistence;
// generation failures propagate to the caller unmodified.
type readingService struct {
	settings SettingsService
	factory  ai.GeneratorFactory
	logger   *zap.Logger

	model               string
	maxHistoryTurns     int
	maxInlineImageBytes int
}

// NewReadingService creates a new ReadingService instance.
func NewReadingService(settings SettingsService, factory ai.GeneratorFactory, appConfig *config.Config, logger *zap.Logger) (ReadingService, error) {
	if settings == nil || factory == nil {
		return nil, errors.New("NewReadingService: settings and factory are required")
	}
	return &readingService{
		settings:            settings,
		factory:             factory,
		logger:              logger,
		model:               appConfig.GeminiModel,
		maxHistoryTurns:     appConfig.MaxHistoryTurns,
		maxInlineImageBytes: appConfig.MaxInlineImageBytes,
	}, nil
}

// generator resolves the active API key and constructs a fresh client so
// that admin key rotations apply without a restart.
func (s *readingService) generator(ctx context.Context) (ai.Generator, error) {
	res := s.settings.ResolveGeminiKey(ctx)
	if res.Warning != "" {
		s.logger.Warn("Gemini key resolution degraded", zap.String("warning", res.Warning))
	}
	gen, err := s.factory(ctx, res.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to construct generation client: %w", err)
	}
	return gen, nil
}

// generationConfig builds the per-request configuration carrying the fixed
// persona instruction and sampling parameters.
func (s *readingService) generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.PersonaInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(readingTemperature),
		TopP:              genai.Ptr(readingTopP),
		TopK:              genai.Ptr(readingTopK),
	}
}

// generate issues the single outbound call and post-processes the result.
func (s *readingService) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	gen, err := s.generator(ctx)
	if err != nil {
		return "", err
	}
	text, err := gen.GenerateContent(ctx, s.model, contents, s.generationConfig())
	if err != nil {
		return "", err
	}
	if text == "" {
		return fallbackReading, nil
	}
	return filter.CleanModelHTML(text), nil
}

// imagePart decodes one data-URI image into an inline request part,
// enforcing the byte ceiling before anything leaves the process.
func (s *readingService) imagePart(dataURI string) (*genai.Part, error) {
	mimeType, data, err := ai.DecodeDataURI(dataURI)
	if err != nil {
		return nil, err
	}
	if len(data) > s.maxInlineImageBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrImageTooLarge, len(data), s.maxInlineImageBytes)
	}
	return genai.NewPartFromBytes(data, mimeType), nil
}

// historyContents converts prior conversation turns into role-tagged
// contents, truncating to the newest maxHistoryTurns entries.
func (s *readingService) historyContents(history []models.ChatMessage) ([]*genai.Content, error) {
	if len(history) > s.maxHistoryTurns {
		history = history[len(history)-s.maxHistoryTurns:]
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		var role genai.Role
		switch msg.Role {
		case models.ChatRoleUser:
			role = genai.RoleUser
		case models.ChatRoleModel:
			role = genai.RoleModel
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidChatRole, msg.Role)
		}

		var parts []*genai.Part
		if msg.Text != "" {
			parts = append(parts, genai.NewPartFromText(msg.Text))
		}
		for _, img := range msg.Images {
			part, err := s.imagePart(img)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
		if len(parts) == 0 {
			continue
		}
		contents = append(contents, genai.NewContentFromParts(parts, role))
	}
	return contents, nil
}

// AnalyzeHoroscopeAdvanced replays the conversation history and sends the
// new turn (freshly attached images plus the composed text block) in a
// single stateless generation call.
func (s *readingService) AnalyzeHoroscopeAdvanced(ctx context.Context, req models.ChatReadingRequest) (string, error) {
	contents, err := s.historyContents(req.History)
	if err != nil {
		return "", err
	}

	var parts []*genai.Part
	for _, img := range req.Images {
		part, err := s.imagePart(img)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	parts = append(parts, genai.NewPartFromText(prompt.ChatPrompt(req.Message, req.Lang, time.Now())))
	contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))

	return s.generate(ctx, contents)
}

// GetHoroscopeReading issues a single-shot text-only reading from the
// three free-text birth fields.
func (s *readingService) GetHoroscopeReading(ctx context.Context, data models.HoroscopeData, lang string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt.HoroscopePrompt(data, lang), genai.RoleUser),
	}
	return s.generate(ctx, contents)
}

// GetPorondamReading issues a single-shot compatibility reading from the
// four free-text fields.
func (s *readingService) GetPorondamReading(ctx context.Context, data models.PorondamData, lang string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt.PorondamPrompt(data, lang), genai.RoleUser),
	}
	return s.generate(ctx, contents)
}

// AnalyzeAncientManuscript sends one manuscript image with its prompt.
func (s *readingService) AnalyzeAncientManuscript(ctx context.Context, imageDataURI, lang string) (string, error) {
	part, err := s.imagePart(imageDataURI)
	if err != nil {
		return "", err
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			part,
			genai.NewPartFromText(prompt.ManuscriptPrompt(lang)),
		}, genai.RoleUser),
	}
	return s.generate(ctx, contents)
}
