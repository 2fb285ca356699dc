package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/minhyannv/gemini-chat-go/pkg/chat"
	configpkg "github.com/minhyannv/gemini-chat-go/pkg/config"
	loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"
	"google.golang.org/genai"
)

// Gemini generates replies through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string

	logger  loggerpkg.Logger
	verbose bool
}

// NewGemini creates a Gemini API client authenticated with cfg.APIKey.
func NewGemini(ctx context.Context, cfg configpkg.Config, opts ...Option) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("APIKey is not set")
	}
	if cfg.Model == "" {
		return nil, errors.New("Model is not set")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	d := applyOptions(opts)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	loggerpkg.Debug(cfg.Verbose, d.logger, "gemini client ready", map[string]any{
		"model":    cfg.Model,
		"base_url": cfg.BaseURL,
	})
	return &Gemini{
		client:  client,
		model:   cfg.Model,
		logger:  d.logger,
		verbose: cfg.Verbose,
	}, nil
}

// Label implements Backend.
func (g *Gemini) Label() string { return "Gemini" }

// Generate implements chat.Generator.
func (g *Gemini) Generate(ctx context.Context, req chat.Request, gen chat.GenerationConfig) (string, error) {
	temperature := gen.Temperature
	resp, err := g.client.Models.GenerateContent(ctx, g.model, geminiContents(req), &genai.GenerateContentConfig{
		MaxOutputTokens: gen.MaxOutputTokens,
		Temperature:     &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if g.verbose {
		for i, cand := range resp.Candidates {
			loggerpkg.Debug(g.verbose, g.logger, "gemini candidate", map[string]any{
				"index":         i,
				"finish_reason": string(cand.FinishReason),
			})
		}
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini generate content: %w", ErrEmptyResponse)
	}
	return text, nil
}

func geminiContents(req chat.Request) []*genai.Content {
	if req.IsBare() {
		return genai.Text(req.Prompt)
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if msg.Role == chat.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}
	return contents
}
