package genai

import "context"

// Message roles, provider-neutral
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversational turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options controls a single completion request
type Options struct {
	// JSONMode asks the provider for a machine-parseable JSON object.
	// The response is still untrusted input and must be schema-checked
	// by the caller.
	JSONMode    bool
	Temperature float32
}

// Completer defines the interface to a generative text provider
type Completer interface {
	// Complete sends a system instruction plus conversation turns and
	// returns the provider's text response
	Complete(ctx context.Context, system string, turns []Message, opts Options) (string, error)
}

// Transcriber defines the interface to a speech-to-text provider
type Transcriber interface {
	// Transcribe converts an audio file to text
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
