package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearChatEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CHAT_PROVIDER", "MODEL", "GEMINI_API_KEY", "GEMINI_BASE_URL", "OPENAI_API_KEY", "OPENAI_BASE_URL"} {
		t.Setenv(key, "")
	}
}

func TestRunMissingAPIKeyExitsBeforeBanner(t *testing.T) {
	clearChatEnv(t)

	var out, errOut bytes.Buffer
	code := run(context.Background(), nil, strings.NewReader("Hi\n"), &out, &errOut)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "GEMINI_API_KEY") {
		t.Fatalf("expected error naming GEMINI_API_KEY, got %q", errOut.String())
	}
}

func TestRunRejectsBadFlag(t *testing.T) {
	clearChatEnv(t)
	var out, errOut bytes.Buffer
	if code := run(context.Background(), []string{"-nope"}, strings.NewReader(""), &out, &errOut); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestParseCLIConfigPrecedence(t *testing.T) {
	clearChatEnv(t)
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("MODEL", "gemini-env")

	path := filepath.Join(t.TempDir(), "chat.yaml")
	if err := os.WriteFile(path, []byte("model: gemini-file\nmax_output_tokens: 512\ntemperature: 0.5\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := parseCLIConfig([]string{"-config", path, "-temperature", "0.1"}, nil)
	if err != nil {
		t.Fatalf("parseCLIConfig returned error: %v", err)
	}
	if cfg.Model != "gemini-env" {
		t.Fatalf("expected env to override file model, got %q", cfg.Model)
	}
	if cfg.MaxOutputTokens != 512 {
		t.Fatalf("expected file max tokens, got %d", cfg.MaxOutputTokens)
	}
	if cfg.Temperature != 0.1 {
		t.Fatalf("expected flag temperature, got %v", cfg.Temperature)
	}
	if cfg.APIKey != "secret" {
		t.Fatalf("expected API key from env, got %q", cfg.APIKey)
	}
}

func TestParseCLIConfigDefaults(t *testing.T) {
	clearChatEnv(t)
	cfg, err := parseCLIConfig(nil, nil)
	if err != nil {
		t.Fatalf("parseCLIConfig returned error: %v", err)
	}
	if cfg.Model != "gemini-2.0-flash-001" || cfg.MaxOutputTokens != 1024 || cfg.Temperature != 0.7 {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
}

func TestRunHelpPrintsUsage(t *testing.T) {
	clearChatEnv(t)
	var out, errOut bytes.Buffer
	if code := run(context.Background(), []string{"-h"}, strings.NewReader(""), &out, &errOut); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	for _, want := range []string{"-max_tokens", "-temperature", "-config", "-verbose"} {
		if !strings.Contains(errOut.String(), want) {
			t.Fatalf("expected usage to list %q, got %q", want, errOut.String())
		}
	}
	if strings.Contains(errOut.String(), "Error:") {
		t.Fatalf("expected no error line for -h, got %q", errOut.String())
	}
}

func TestRunRejectsOversizedMaxTokens(t *testing.T) {
	clearChatEnv(t)
	t.Setenv("GEMINI_API_KEY", "secret")

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-max_tokens", "4294968320"}, strings.NewReader("Hi\n"), &out, &errOut)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "max output tokens out of range") {
		t.Fatalf("expected range error, got %q", errOut.String())
	}
}

func TestRunVerboseLogsSessionStart(t *testing.T) {
	clearChatEnv(t)
	t.Setenv("GEMINI_API_KEY", "secret")

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-verbose"}, strings.NewReader("exit\n"), &out, &errOut)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr %q)", code, errOut.String())
	}
	if !strings.Contains(errOut.String(), "chat session starting") {
		t.Fatalf("expected startup log on stderr, got %q", errOut.String())
	}
	if strings.Contains(out.String(), "chat session starting") {
		t.Fatal("expected logs to stay off stdout")
	}
	if !strings.Contains(out.String(), "Thank you for chatting with Gemini. Goodbye!") {
		t.Fatalf("expected farewell, got %q", out.String())
	}
}
