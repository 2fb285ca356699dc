// Package chat holds the conversation history and the request/commit cycle of one session.
package chat

import (
	"context"
	"errors"
	"fmt"

	loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"
)

// GenerationConfig holds the sampling settings sent with every request.
type GenerationConfig struct {
	MaxOutputTokens int32
	Temperature     float32
}

// DefaultGenerationConfig returns the fixed settings used by the CLI.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		MaxOutputTokens: 1024,
		Temperature:     0.7,
	}
}

// Generator calls the remote model endpoint.
type Generator interface {
	Generate(ctx context.Context, req Request, cfg GenerationConfig) (string, error)
}

// Session owns the history of one conversation.
type Session struct {
	generator  Generator
	generation GenerationConfig
	history    History

	logger  loggerpkg.Logger
	verbose bool
}

// NewSession creates an empty session that sends requests through generator.
func NewSession(generator Generator, generation GenerationConfig, opts ...SessionOption) (*Session, error) {
	if generator == nil {
		return nil, errors.New("generator is required")
	}
	deps := sessionDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}
	return &Session{
		generator:  generator,
		generation: generation,
		logger:     deps.logger,
		verbose:    deps.verbose,
	}, nil
}

// Send forwards line to the generator and returns the reply.
// The exchange is committed to history only when the call succeeds;
// on error the history is left exactly as it was.
func (s *Session) Send(ctx context.Context, line string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req := BuildRequest(&s.history, line)
	loggerpkg.Debug(s.verbose, s.logger, "generate request", map[string]any{
		"bare":     req.IsBare(),
		"messages": len(req.Messages),
		"history":  s.history.Len(),
	})

	reply, err := s.generator.Generate(ctx, req, s.generation)
	if err != nil {
		loggerpkg.Warn(s.logger, "generate failed", map[string]any{
			"error":   err.Error(),
			"history": s.history.Len(),
		})
		return "", fmt.Errorf("generate reply: %w", err)
	}

	s.history.Commit(line, reply)
	loggerpkg.Debug(s.verbose, s.logger, "turn committed", map[string]any{
		"history":     s.history.Len(),
		"reply_bytes": len(reply),
	})
	return reply, nil
}

// History returns a copy of the committed turns.
func (s *Session) History() []Turn {
	return s.history.Turns()
}
