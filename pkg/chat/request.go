package chat

// Request is the payload for one generate call.
// Exactly one of Prompt (first turn) or Messages (later turns) is meaningful.
type Request struct {
	Prompt   string
	Messages []Turn
}

// IsBare reports whether the request is a single bare prompt.
func (r Request) IsBare() bool {
	return r.Messages == nil
}

// BuildRequest produces the request for line given the committed history.
// With no history the line is sent bare; otherwise every committed turn is
// replayed in order, followed by the new user line. Text is passed through as is.
func BuildRequest(history *History, line string) Request {
	if history == nil || history.Len() == 0 {
		return Request{Prompt: line}
	}

	messages := make([]Turn, 0, history.Len()+1)
	messages = append(messages, history.turns...)
	messages = append(messages, Turn{Role: RoleUser, Text: line})
	return Request{Messages: messages}
}
