package ai

import (
	"context"
	"strings"
)

// Service wraps the generation model with the two fixed instruction
// templates of the voice pipeline.
type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Correct asks the model for a grammatically fixed version of the utterance.
func (s *Service) Correct(ctx context.Context, text string) (string, error) {
	out, err := s.gen.Generate(ctx, correctionPrompt(text))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Reply asks the model for a Devanagari reply to the corrected utterance.
func (s *Service) Reply(ctx context.Context, text string) (string, error) {
	out, err := s.gen.Generate(ctx, replyPrompt(text))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
