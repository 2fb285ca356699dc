package chat

// Role is the author of one turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one tagged history entry.
type Turn struct {
	Role Role
	Text string
}

// History is the ordered, append-only record of committed turns for one session.
// Turns are only ever added in user/model pairs, so its length is always even.
type History struct {
	turns []Turn
}

// Commit appends a completed exchange.
func (h *History) Commit(userText, modelText string) {
	h.turns = append(h.turns,
		Turn{Role: RoleUser, Text: userText},
		Turn{Role: RoleModel, Text: modelText},
	)
}

// Len returns the number of committed turns.
func (h *History) Len() int {
	return len(h.turns)
}

// Turns returns a copy of the committed turns in chronological order.
func (h *History) Turns() []Turn {
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}
