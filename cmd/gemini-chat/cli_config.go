package main

import (
	"flag"
	"io"

	"github.com/joho/godotenv"
	configpkg "github.com/minhyannv/gemini-chat-go/pkg/config"
)

// parseCLIConfig loads defaults, the optional config file, env and flags, in that order.
func parseCLIConfig(args []string, usage io.Writer) (configpkg.Config, error) {
	_ = godotenv.Load()

	defaults := configpkg.DefaultConfig()
	fs := flag.NewFlagSet("gemini-chat", flag.ContinueOnError)
	if usage == nil {
		usage = io.Discard
	}
	fs.SetOutput(usage)
	configFile := fs.String("config", "", "Optional YAML config file")
	maxTokens := fs.Int("max_tokens", defaults.MaxOutputTokens, "Maximum output tokens per reply")
	temperature := fs.Float64("temperature", defaults.Temperature, "Sampling temperature")
	verbose := fs.Bool("verbose", defaults.Verbose, "Verbose request logging to stderr")
	if err := fs.Parse(args); err != nil {
		return configpkg.Config{}, err
	}

	cfg, err := configpkg.LoadFile(*configFile, defaults)
	if err != nil {
		return configpkg.Config{}, err
	}
	cfg = configpkg.FromEnv(cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max_tokens":
			cfg.MaxOutputTokens = *maxTokens
		case "temperature":
			cfg.Temperature = *temperature
		case "verbose":
			cfg.Verbose = *verbose
		}
	})
	return configpkg.Normalize(cfg), nil
}
