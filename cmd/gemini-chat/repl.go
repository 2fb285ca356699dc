package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minhyannv/gemini-chat-go/pkg/chat"
	loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"
)

// replOptions configures REPL behavior.
type replOptions struct {
	Model   string
	Label   string
	Verbose bool
	Logger  loggerpkg.Logger
}

// runREPL reads lines from in until exit/quit or EOF, printing each reply to out.
func runREPL(ctx context.Context, session *chat.Session, opts replOptions, in io.Reader, out io.Writer) error {
	if session == nil {
		return fmt.Errorf("session is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	if opts.Label == "" {
		opts.Label = "Gemini"
	}

	loggerpkg.Debug(opts.Verbose, opts.Logger, "repl start", map[string]any{
		"model": opts.Model,
	})

	reader := bufio.NewReader(in)
	printWelcome(out, opts.Model)

	for {
		_, _ = fmt.Fprint(out, "\nYou: ")
		input, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if chat.IsExitCommand(input) {
			_, _ = fmt.Fprintf(out, "\nThank you for chatting with %s. Goodbye!\n", opts.Label)
			return nil
		}

		reply, err := session.Send(ctx, input)
		if err != nil {
			_, _ = fmt.Fprintf(out, "\nError: %v\n", err)
			continue
		}
		_, _ = fmt.Fprintf(out, "\n%s: %s\n", opts.Label, reply)
	}
}

// readLine returns one line without its terminator. A final line lacking a
// newline is returned as is; io.EOF is only reported once nothing is left.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func printWelcome(out io.Writer, model string) {
	_, _ = fmt.Fprintln(out, "Welcome to Gemini Chat CLI!")
	_, _ = fmt.Fprintf(out, "Using model: %s\n", model)
	_, _ = fmt.Fprintln(out, "Type 'exit' or 'quit' to end the conversation.")
	_, _ = fmt.Fprintln(out, strings.Repeat("-", 50))
}
