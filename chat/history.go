package chat

import "go-floodlens/types"

// History is a capped, append-only conversation log. Appending beyond the
// cap evicts the oldest turn first.
type History struct {
	limit int
	turns []types.Turn
}

// NewHistory creates a log holding at most limit turns.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Append adds one turn, evicting the oldest if the log is full.
func (h *History) Append(role, text string) {
	h.turns = append(h.turns, types.Turn{Role: role, Text: text})
	if len(h.turns) > h.limit {
		h.turns = h.turns[len(h.turns)-h.limit:]
	}
}

// Window returns a copy of the most recent n turns.
func (h *History) Window(n int) []types.Turn {
	start := len(h.turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]types.Turn, len(h.turns)-start)
	copy(out, h.turns[start:])
	return out
}

// All returns a copy of every retained turn.
func (h *History) All() []types.Turn {
	return h.Window(len(h.turns))
}

// Len returns the number of retained turns.
func (h *History) Len() int {
	return len(h.turns)
}
