// Package companion holds the clients for the chat model and the camera fall detector.
package companion

import (
	"context"
	"strings"
	"time"

	"sahara/config"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/service"
	"sahara/internal/errors"

	"google.golang.org/genai"
)

const (
	defaultChatModel   = "gemini-2.0-flash"
	defaultChatTimeout = 30 * time.Second
)

type geminiChat struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewChatService returns a Gemini-backed chat client, or one that always
// reports ErrCompanionUnavailable when no API key is configured.
func NewChatService(cfg *config.Config) (service.ChatService, error) {
	if cfg.Companion == nil || cfg.Companion.Chat.APIKey == "" {
		return unavailableChat{}, nil
	}

	chat := cfg.Companion.Chat
	clientConfig := &genai.ClientConfig{
		APIKey:  chat.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if chat.Endpoint != "" {
		clientConfig.HTTPOptions.BaseURL = chat.Endpoint
	}

	return NewGeminiChat(context.Background(), clientConfig, chat.Model, chat.Timeout)
}

func NewGeminiChat(ctx context.Context, clientConfig *genai.ClientConfig, model string, timeout time.Duration) (service.ChatService, error) {
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	if model == "" {
		model = defaultChatModel
	}
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}

	return &geminiChat{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *geminiChat) Reply(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", domainerrors.ErrUpstreamFailed.WithDetails(err.Error())
	}

	reply := replyText(resp)
	if reply == "" {
		return "", domainerrors.ErrUpstreamFailed.WithDetails("model returned no text")
	}

	return reply, nil
}

// replyText joins the text parts of the first candidate.
func replyText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	return b.String()
}

type unavailableChat struct{}

func (unavailableChat) Reply(context.Context, string) (string, error) {
	return "", domainerrors.ErrCompanionUnavailable.WithDetails("chat model is not configured")
}
