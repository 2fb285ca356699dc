package provider

import (
	"context"
	"fmt"

	"github.com/minhyannv/gemini-chat-go/pkg/chat"
	configpkg "github.com/minhyannv/gemini-chat-go/pkg/config"
	loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI generates replies through an OpenAI-compatible chat completions endpoint.
type OpenAI struct {
	client openai.Client
	model  string

	logger  loggerpkg.Logger
	verbose bool
}

// NewOpenAI creates a chat completions client from cfg.
func NewOpenAI(cfg configpkg.Config, opts ...Option) *OpenAI {
	d := applyOptions(opts)
	loggerpkg.Debug(cfg.Verbose, d.logger, "openai client ready", map[string]any{
		"model":    cfg.Model,
		"base_url": cfg.BaseURL,
	})
	return &OpenAI{
		client:  newOpenAIClient(cfg),
		model:   cfg.Model,
		logger:  d.logger,
		verbose: cfg.Verbose,
	}
}

func newOpenAIClient(cfg configpkg.Config) openai.Client {
	opts := []option.RequestOption{}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	return openai.NewClient(opts...)
}

// Label implements Backend.
func (o *OpenAI) Label() string { return "Assistant" }

// Generate implements chat.Generator.
func (o *OpenAI) Generate(ctx context.Context, req chat.Request, gen chat.GenerationConfig) (string, error) {
	loggerpkg.Debugf(o.verbose, o.logger, "openai: sending request with %d message(s)", len(req.Messages))
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Messages:    openAIMessages(req),
		MaxTokens:   openai.Int(int64(gen.MaxOutputTokens)),
		Temperature: openai.Float(float64(gen.Temperature)),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai chat completion: %w", ErrEmptyResponse)
	}
	return completion.Choices[0].Message.Content, nil
}

func openAIMessages(req chat.Request) []openai.ChatCompletionMessageParamUnion {
	if req.IsBare() {
		return []openai.ChatCompletionMessageParamUnion{openai.UserMessage(req.Prompt)}
	}

	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		if msg.Role == chat.RoleModel {
			out = append(out, openai.AssistantMessage(msg.Text))
			continue
		}
		out = append(out, openai.UserMessage(msg.Text))
	}
	return out
}
