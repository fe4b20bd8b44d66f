package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	voice *VoiceHandler,
	tts *TTSHandler,
	outputDir string,
) {
	r.With(httputil.RecoverMiddleware).
		Post("/api/whisper/transcribe", voice.Transcribe)

	r.With(httputil.RecoverMiddleware).
		Post("/api/tts/generate", tts.Generate)

	// generated audio, served back by filename
	outputs := http.StripPrefix("/outputs/", http.FileServer(http.Dir(outputDir)))
	r.With(httputil.RecoverMiddleware).
		Get("/outputs/*", outputs.ServeHTTP)
}
