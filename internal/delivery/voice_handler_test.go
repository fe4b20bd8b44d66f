package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mithunlabs/vani/internal/dialog"
	"github.com/mithunlabs/vani/internal/storage"
)

type fakeDialog struct {
	result dialog.Result
	err    error

	gotPath     string
	fileExisted bool
}

func (f *fakeDialog) Process(_ context.Context, audioPath string) (dialog.Result, error) {
	f.gotPath = audioPath
	if _, err := os.Stat(audioPath); err == nil {
		f.fileExisted = true
	}
	return f.result, f.err
}

type fakeSynth struct {
	content []byte
	err     error
	gotText string
}

func (f *fakeSynth) Synthesize(_ context.Context, text, outPath string) error {
	f.gotText = text
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, f.content, 0644)
}

func newTestServer(t *testing.T, dlg DialogService, synth Synthesizer) (http.Handler, *storage.Store) {
	t.Helper()

	base := t.TempDir()
	store, err := storage.New(filepath.Join(base, "uploads"), filepath.Join(base, "outputs"))
	require.NoError(t, err)

	zl := logger.NewZapLogger(zap.NewNop().Sugar())

	r := chi.NewRouter()
	RegisterRoutes(r, NewVoiceHandler(dlg, store, zl), NewTTSHandler(synth, store, zl), store.OutputDir)
	return r, store
}

func newAudioRequest(t *testing.T) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("audio", "clip.wav")
	require.NoError(t, err)
	_, err = fw.Write([]byte("RIFF fake wav payload"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/whisper/transcribe", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestTranscribeMissingAudioField(t *testing.T) {
	srv, store := newTestServer(t, &fakeDialog{}, &fakeSynth{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/whisper/transcribe", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "No audio file provided", body["error"])

	assert.Empty(t, dirEntries(t, store.UploadDir), "no upload may be created on a 400")
}

func TestTranscribeSuccess(t *testing.T) {
	dlg := &fakeDialog{result: dialog.Result{
		Transcribed: "नमस्ते",
		Response:    "नमस्ते, कथम् अस्ति?",
	}}
	srv, store := newTestServer(t, dlg, &fakeSynth{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, newAudioRequest(t))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "नमस्ते", body["transcribed"])
	assert.Equal(t, "नमस्ते, कथम् अस्ति?", body["response"])

	assert.True(t, strings.HasPrefix(dlg.gotPath, store.UploadDir))
	assert.True(t, dlg.fileExisted, "pipeline must see the saved upload")
	assert.Empty(t, dirEntries(t, store.UploadDir), "upload must be removed after the response")
}

func TestTranscribePipelineFailureCleansUp(t *testing.T) {
	dlg := &fakeDialog{err: &dialog.StageError{
		Stage: dialog.StageCorrect,
		Err:   errors.New("network down"),
	}}
	srv, store := newTestServer(t, dlg, &fakeSynth{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, newAudioRequest(t))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Processing failed: correct: network down", body["error"])

	assert.Empty(t, dirEntries(t, store.UploadDir), "upload must be removed after a failure")
}
