package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/mithunlabs/vani/internal/storage"
)

type TTSHandler struct {
	tts   Synthesizer
	store *storage.Store
	log   *logger.ZapLogger
}

func NewTTSHandler(tts Synthesizer, store *storage.Store, log *logger.ZapLogger) *TTSHandler {
	return &TTSHandler{
		tts:   tts,
		store: store,
		log:   log,
	}
}

// Generate synthesizes the posted text into a retained output file and
// returns its serving path. Empty text is passed through as-is.
func (h *TTSHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	name := h.store.NewOutputName()
	if err := h.tts.Synthesize(r.Context(), req.Text, h.store.OutputPath(name)); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "tts failed", Error: err})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"audio_url": "/outputs/" + name,
	})
}
