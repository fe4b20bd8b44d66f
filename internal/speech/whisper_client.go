package speech

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Hint passed to the translation endpoint so whisper decodes the audio as
// Sanskrit before rendering it in the reference language.
const sttPromptHint = "The speaker is talking in Sanskrit."

type WhisperClient struct {
	client *openai.Client
}

func NewWhisperClient(apiKey string) *WhisperClient {
	return &WhisperClient{
		client: openai.NewClient(apiKey),
	}
}

// Transcribe runs the whisper "translate" task: audio in, text already
// rendered in the reference language rather than the spoken one.
func (c *WhisperClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := c.client.CreateTranslation(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Prompt:   sttPromptHint,
	})
	if err != nil {
		return "", fmt.Errorf("whisper request: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("empty transcript")
	}
	return text, nil
}
