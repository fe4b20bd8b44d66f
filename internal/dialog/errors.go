package dialog

import "fmt"

type Stage string

const (
	StageTranscribe Stage = "transcribe"
	StageCorrect    Stage = "correct"
	StageReply      Stage = "reply"
)

// StageError tags an external-call failure with the pipeline stage it
// happened in, so the handler layer can report one uniform envelope while
// logs keep the origin.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
