package dialog

import (
	"context"
	"log"
	"time"
)

// Per-call ceiling on each external stage. The calls themselves run
// strictly in sequence.
const stageTimeout = 120 * time.Second

type Result struct {
	Transcribed string
	Response    string
}

// Service runs the voice pipeline for one saved upload:
// speech-to-text → grammar correction → reply generation.
type Service struct {
	stt      Transcriber
	composer Composer
}

func NewService(stt Transcriber, composer Composer) *Service {
	return &Service{
		stt:      stt,
		composer: composer,
	}
}

func (s *Service) Process(ctx context.Context, audioPath string) (Result, error) {
	start := time.Now()

	sttCtx, cancel := context.WithTimeout(ctx, stageTimeout)
	transcript, err := s.stt.Transcribe(sttCtx, audioPath)
	cancel()
	if err != nil {
		return Result{}, &StageError{Stage: StageTranscribe, Err: err}
	}
	log.Printf("[dialog][%.1fs] transcript: %s", time.Since(start).Seconds(), transcript)

	corrCtx, cancel := context.WithTimeout(ctx, stageTimeout)
	corrected, err := s.composer.Correct(corrCtx, transcript)
	cancel()
	if err != nil {
		return Result{}, &StageError{Stage: StageCorrect, Err: err}
	}
	log.Printf("[dialog][%.1fs] corrected: %s", time.Since(start).Seconds(), corrected)

	replyCtx, cancel := context.WithTimeout(ctx, stageTimeout)
	reply, err := s.composer.Reply(replyCtx, corrected)
	cancel()
	if err != nil {
		return Result{}, &StageError{Stage: StageReply, Err: err}
	}
	log.Printf("[dialog][%.1fs] reply: %s", time.Since(start).Seconds(), reply)

	return Result{
		Transcribed: corrected,
		Response:    reply,
	}, nil
}
