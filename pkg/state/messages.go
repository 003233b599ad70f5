package state

// Message is one player-visible log line with its display color.
type Message struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Messages is the ordered session log.
type Messages []Message

// Add appends a message to the log.
func (m *Messages) Add(text, color string) {
	*m = append(*m, Message{Text: text, Color: color})
}

// Tail returns the last n messages (or all of them if fewer exist).
func (m Messages) Tail(n int) Messages {
	if len(m) <= n {
		return m
	}
	return m[len(m)-n:]
}
