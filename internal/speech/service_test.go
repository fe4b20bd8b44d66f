package speech

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSTT struct {
	gotPath string
	out     string
	err     error
}

func (f *fakeSTT) Transcribe(_ context.Context, filePath string) (string, error) {
	f.gotPath = filePath
	return f.out, f.err
}

type fakeTTS struct {
	gotText string
	err     error
}

func (f *fakeTTS) Synthesize(_ context.Context, text, outPath string) error {
	f.gotText = text
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, []byte("mp3 bytes"), 0644)
}

func TestServiceDelegatesTranscribe(t *testing.T) {
	stt := &fakeSTT{out: "namaste"}
	svc := NewService(stt, &fakeTTS{})

	got, err := svc.Transcribe(context.Background(), "uploads/clip.wav")
	require.NoError(t, err)
	assert.Equal(t, "namaste", got)
	assert.Equal(t, "uploads/clip.wav", stt.gotPath)
}

func TestServiceDelegatesSynthesize(t *testing.T) {
	tts := &fakeTTS{}
	svc := NewService(&fakeSTT{}, tts)

	outPath := filepath.Join(t.TempDir(), "out.mp3")
	require.NoError(t, svc.Synthesize(context.Background(), "नमस्ते", outPath))
	assert.Equal(t, "नमस्ते", tts.gotText)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "mp3 bytes", string(data))
}

func TestServicePropagatesSynthesisError(t *testing.T) {
	svc := NewService(&fakeSTT{}, &fakeTTS{err: errors.New("upstream 503")})

	err := svc.Synthesize(context.Background(), "text", filepath.Join(t.TempDir(), "out.mp3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 503")
}
