// Package main provides an interactive terminal chat with a hosted model.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/minhyannv/gemini-chat-go/pkg/chat"
	configpkg "github.com/minhyannv/gemini-chat-go/pkg/config"
	loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"
	"github.com/minhyannv/gemini-chat-go/pkg/provider"
)

// main is the program entry point.
func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := parseCLIConfig(args, errOut)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	if err := configpkg.Validate(cfg); err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	var appLogger loggerpkg.Logger = loggerpkg.NopLogger{}
	if cfg.Verbose {
		appLogger = loggerpkg.NewWriterLogger(errOut)
	}

	backend, err := provider.New(ctx, cfg, provider.WithLogger(appLogger))
	if err != nil {
		loggerpkg.Error(appLogger, "backend init failed", map[string]any{
			"provider": cfg.Provider,
			"error":    err.Error(),
		})
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	loggerpkg.Info(appLogger, "chat session starting", map[string]any{
		"provider":          cfg.Provider,
		"model":             cfg.Model,
		"max_output_tokens": cfg.MaxOutputTokens,
		"temperature":       cfg.Temperature,
	})

	if err := runChat(ctx, backend, cfg, appLogger, in, out); err != nil {
		loggerpkg.Error(appLogger, "chat session failed", map[string]any{
			"error": err.Error(),
		})
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runChat(
	ctx context.Context,
	generator chat.Generator,
	cfg configpkg.Config,
	appLogger loggerpkg.Logger,
	in io.Reader,
	out io.Writer,
) error {
	session, err := chat.NewSession(generator, generationConfig(cfg),
		chat.WithLogger(appLogger),
		chat.WithVerbose(cfg.Verbose),
	)
	if err != nil {
		return err
	}

	label := "Gemini"
	if b, ok := generator.(provider.Backend); ok {
		label = b.Label()
	}
	return runREPL(ctx, session, replOptions{
		Model:   cfg.Model,
		Label:   label,
		Verbose: cfg.Verbose,
		Logger:  appLogger,
	}, in, out)
}

func generationConfig(cfg configpkg.Config) chat.GenerationConfig {
	return chat.GenerationConfig{
		MaxOutputTokens: int32(cfg.MaxOutputTokens),
		Temperature:     float32(cfg.Temperature),
	}
}
