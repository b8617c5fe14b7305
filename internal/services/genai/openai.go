package genai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Config holds provider settings for the OpenAI-backed client
type Config struct {
	APIKey            string
	BaseURL           string
	ChatModel         string
	TranscribeModel   string
	RequestTimeout    time.Duration
	TranscribeTimeout time.Duration
}

// Client implements Completer and Transcriber against the OpenAI API.
// Construct one per process at startup and share it; the underlying
// HTTP client is safe for concurrent use.
type Client struct {
	api               *openai.Client
	chatModel         string
	transcribeModel   string
	requestTimeout    time.Duration
	transcribeTimeout time.Duration
}

// NewClient creates an OpenAI-backed provider client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	transcribeModel := cfg.TranscribeModel
	if transcribeModel == "" {
		transcribeModel = openai.Whisper1
	}
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}
	transcribeTimeout := cfg.TranscribeTimeout
	if transcribeTimeout <= 0 {
		transcribeTimeout = 5 * time.Minute
	}

	return &Client{
		api:               openai.NewClientWithConfig(clientConfig),
		chatModel:         chatModel,
		transcribeModel:   transcribeModel,
		requestTimeout:    requestTimeout,
		transcribeTimeout: transcribeTimeout,
	}, nil
}

// Complete sends a system instruction plus conversation turns and returns
// the provider's text response
func (c *Client) Complete(ctx context.Context, system string, turns []Message, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range turns {
		role := openai.ChatMessageRoleUser
		if turn.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    messages,
		Temperature: opts.Temperature,
	}
	if opts.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Transcribe converts an audio file to text
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.transcribeTimeout)
	defer cancel()

	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcribeModel,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("audio transcription failed: %w", err)
	}

	return resp.Text, nil
}
