// Package assistant implements the legal assistant on top of the Gemini API.
package assistant

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lawyerup/config"
	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// generateFunc sends one generation request and returns the response text.
type generateFunc func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error)

type geminiAssistant struct {
	generate generateFunc // nil when no API key is configured
	timeout  time.Duration
	logger   *slog.Logger
}

// AssistantParams holds dependencies for the legal assistant, injected by Fx.
type AssistantParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLegalAssistant creates the Gemini backed assistant. Without an API key the
// assistant still works but every call degrades to its empty result.
func NewLegalAssistant(params AssistantParams) (service.LegalAssistant, error) {
	cfg := params.Config.Assistant
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Warn("Assistant API key not configured, recommendations, news and LawBot are disabled")

		return newGeminiAssistant(nil, 0, params.Logger), nil
	}

	client, err := genai.NewClient(params.Ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	params.Logger.Info("Legal assistant enabled", slog.String("model", model))

	generate := func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model, contents, config)
		if err != nil {
			return "", errors.Wrap(err, "generate content")
		}

		return resp.Text(), nil
	}

	return newGeminiAssistant(generate, cfg.Timeout, params.Logger), nil
}

func newGeminiAssistant(generate generateFunc, timeout time.Duration, logger *slog.Logger) *geminiAssistant {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &geminiAssistant{
		generate: generate,
		timeout:  timeout,
		logger:   logger,
	}
}

// call runs one generation with the configured timeout. A disabled assistant
// reports an error so callers take their fallback path.
func (a *geminiAssistant) call(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	if a.generate == nil {
		return "", errors.New("assistant disabled")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.generate(ctx, contents, config)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// RecommendLawyers implements service.LegalAssistant.
func (a *geminiAssistant) RecommendLawyers(ctx context.Context, tmpl *entity.CaseTemplate, lawyers []*entity.User) []entity.Recommendation {
	if !tmpl.HasMatter() || len(lawyers) == 0 {
		return nil
	}

	prompt, err := recommendationPrompt(tmpl, lawyers)
	if err != nil {
		a.logger.Warn("Failed to build recommendation prompt", slog.Any("error", err))
		return nil
	}

	text, err := a.call(ctx, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   recommendationSchema,
	})
	if err != nil {
		a.logger.Warn("Lawyer recommendation failed", slog.Any("error", err))
		return nil
	}

	recs, err := parseRecommendations(text)
	if err != nil {
		a.logger.Warn("Unreadable recommendation response", slog.Any("error", err))
		return nil
	}

	return recs
}

// FetchNews implements service.LegalAssistant.
func (a *geminiAssistant) FetchNews(ctx context.Context) []entity.NewsArticle {
	text, err := a.call(ctx, genai.Text(newsPrompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   newsSchema,
	})
	if err != nil {
		a.logger.Warn("News fetch failed", slog.Any("error", err))
		return nil
	}

	articles, err := parseNews(text)
	if err != nil {
		a.logger.Warn("Unreadable news response", slog.Any("error", err))
		return nil
	}

	return articles
}

// Reply implements service.LegalAssistant.
func (a *geminiAssistant) Reply(ctx context.Context, history []entity.ChatMessage) string {
	contents := historyContents(history)
	if len(contents) == 0 {
		return service.ApologyReply
	}

	text, err := a.call(ctx, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(lawBotInstruction, genai.RoleUser),
	})
	if err != nil {
		a.logger.Warn("LawBot reply failed", slog.Any("error", err))
		return service.ApologyReply
	}

	if text == "" {
		return service.ApologyReply
	}

	return text
}

// historyContents maps a LawBot transcript to model turns. Messages written by
// LawBot become model turns, everything else is a user turn.
func historyContents(history []entity.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		if strings.TrimSpace(msg.Text) == "" {
			continue
		}

		var role genai.Role = genai.RoleUser
		if msg.SenderID == entity.LawBotID {
			role = genai.RoleModel
		}

		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}

	// The model answers the last user turn; trailing model turns carry no question.
	for len(contents) > 0 && contents[len(contents)-1].Role == string(genai.RoleModel) {
		contents = contents[:len(contents)-1]
	}

	return contents
}
