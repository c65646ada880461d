// internal/chat/widget.go
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role Role
	Text string
}

// Greeting seeds every new transcript.
const Greeting = "Hello! I'm your Shopping Assistant. How can I help you today?"

// FallbackReply is appended when the completion call fails, so the
// transcript always answers the user.
const FallbackReply = "I'm having trouble connecting. Please try again later."

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrBusy         = errors.New("a message is already in flight")
)

// Completer is the slice of the API client the widget needs.
type Completer interface {
	Chat(ctx context.Context, message string) (string, error)
}

// Widget maintains a linear, append-only chat transcript. One request may be
// outstanding at a time per widget; a send attempted while another is in
// flight is rejected without touching the transcript.
type Widget struct {
	api Completer

	mu         sync.Mutex
	transcript []Message
	inFlight   bool
}

func NewWidget(api Completer) *Widget {
	return &Widget{
		api:        api,
		transcript: []Message{{Role: RoleAssistant, Text: Greeting}},
	}
}

// Send appends the user message optimistically, forwards it to the chat
// endpoint, and appends the reply. On failure the fallback reply is appended
// and the underlying error returned; there is no retry and the transcript is
// never rolled back.
func (w *Widget) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return ErrBusy
	}
	w.inFlight = true
	w.transcript = append(w.transcript, Message{Role: RoleUser, Text: text})
	w.mu.Unlock()

	reply, err := w.api.Chat(ctx, text)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false
	if err != nil {
		logrus.WithError(err).Warn("chat completion failed")
		w.transcript = append(w.transcript, Message{Role: RoleAssistant, Text: FallbackReply})
		return err
	}
	w.transcript = append(w.transcript, Message{Role: RoleAssistant, Text: reply})
	return nil
}

// Busy reports whether a send is currently in flight.
func (w *Widget) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight
}

// Transcript returns a snapshot of the conversation so far.
func (w *Widget) Transcript() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Message, len(w.transcript))
	copy(out, w.transcript)
	return out
}
