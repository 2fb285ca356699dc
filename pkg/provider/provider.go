// Package provider adapts hosted model endpoints to chat.Generator.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/minhyannv/gemini-chat-go/pkg/chat"
	configpkg "github.com/minhyannv/gemini-chat-go/pkg/config"
	loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"
)

// ErrEmptyResponse is returned when the endpoint answers without any text.
var ErrEmptyResponse = errors.New("empty response")

// Backend is a chat.Generator with a display label for its replies.
type Backend interface {
	chat.Generator
	Label() string
}

// Option configures optional runtime dependencies for a backend.
type Option func(*deps)

type deps struct {
	logger loggerpkg.Logger
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *deps) {
		if l != nil {
			d.logger = l
		}
	}
}

func applyOptions(opts []Option) deps {
	d := deps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

// New builds the backend selected by cfg.Provider.
func New(ctx context.Context, cfg configpkg.Config, opts ...Option) (Backend, error) {
	switch cfg.Provider {
	case configpkg.ProviderGemini:
		return NewGemini(ctx, cfg, opts...)
	case configpkg.ProviderOpenAI:
		return NewOpenAI(cfg, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", configpkg.ErrUnknownProvider, cfg.Provider)
	}
}
