package chat

import (
	"context"
	"fmt"

	"github.com/voxnote/study-api/internal/services/genai"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

// systemPromptFormat binds the assistant to the supplied transcript. The
// provider is instructed to decline anything outside the context rather
// than fabricate an answer.
const systemPromptFormat = `You are a helpful AI assistant. You must ONLY answer questions based on the provided transcription context below. If the answer is not in the context, politely inform the user that you can only discuss the content of the transcription.

CONTEXT:
%s`

const replyTemperature = 0.5

// Service defines the interface for context-bound conversation
type Service interface {
	// Reply answers the latest turn using only the supplied context text
	Reply(ctx context.Context, turns []genai.Message, contextText string) (string, error)
}

type service struct {
	completer genai.Completer
}

// NewService creates a new conversational assistant service
func NewService(completer genai.Completer) Service {
	return &service{completer: completer}
}

// Reply sends the full turn history with the context pinned in the
// system instruction. The exchange is stateless; callers resend history
// each time.
func (s *service) Reply(ctx context.Context, turns []genai.Message, contextText string) (string, error) {
	if len(turns) == 0 {
		return "", apperrors.MissingFieldError("messages")
	}
	if contextText == "" {
		return "", apperrors.MissingFieldError("contextText")
	}

	system := fmt.Sprintf(systemPromptFormat, contextText)
	reply, err := s.completer.Complete(ctx, system, turns, genai.Options{Temperature: replyTemperature})
	if err != nil {
		return "", apperrors.ProviderError("generative-text", err)
	}

	return reply, nil
}
