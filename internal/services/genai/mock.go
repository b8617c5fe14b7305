package genai

import (
	"context"
	"sync"
)

// MockCompleter is a test double for Completer. It is safe for
// concurrent use, since callers may issue completions from multiple
// goroutines.
type MockCompleter struct {
	// CompleteFunc, when set, handles the call entirely
	CompleteFunc func(ctx context.Context, system string, turns []Message, opts Options) (string, error)

	// Response and Err are used when CompleteFunc is nil
	Response string
	Err      error

	mu sync.Mutex
	// Calls records every invocation for assertions
	Calls []MockCompletion
}

// MockCompletion captures the arguments of one Complete call
type MockCompletion struct {
	System string
	Turns  []Message
	Opts   Options
}

func (m *MockCompleter) Complete(ctx context.Context, system string, turns []Message, opts Options) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCompletion{System: system, Turns: turns, Opts: opts})
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, turns, opts)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockTranscriber is a test double for Transcriber
type MockTranscriber struct {
	Text  string
	Err   error
	Calls []string
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	m.Calls = append(m.Calls, audioPath)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}
