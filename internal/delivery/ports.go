package delivery

import (
	"context"

	"github.com/mithunlabs/vani/internal/dialog"
)

type DialogService interface {
	Process(ctx context.Context, audioPath string) (dialog.Result, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, outPath string) error
}
