package chat

import loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"

// SessionOption configures optional runtime dependencies for Session.
type SessionOption func(*sessionDeps)

type sessionDeps struct {
	logger  loggerpkg.Logger
	verbose bool
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) SessionOption {
	return func(d *sessionDeps) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithVerbose enables debug logging of each turn.
func WithVerbose(verbose bool) SessionOption {
	return func(d *sessionDeps) {
		d.verbose = verbose
	}
}
