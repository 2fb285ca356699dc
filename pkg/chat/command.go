package chat

import "strings"

// IsExitCommand reports whether line asks to end the session.
func IsExitCommand(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	default:
		return false
	}
}
