package dialog

import "context"

type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

// Composer is the text side of the pipeline: fix the utterance, then
// compose a reply to it.
type Composer interface {
	Correct(ctx context.Context, text string) (string, error)
	Reply(ctx context.Context, text string) (string, error)
}
