package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/mithunlabs/vani/internal/storage"
)

type VoiceHandler struct {
	dialog DialogService
	store  *storage.Store
	log    *logger.ZapLogger
}

func NewVoiceHandler(dialog DialogService, store *storage.Store, log *logger.ZapLogger) *VoiceHandler {
	return &VoiceHandler{
		dialog: dialog,
		store:  store,
		log:    log,
	}
}

// Transcribe saves the uploaded clip under a unique name, runs the voice
// pipeline over it and deletes the clip whatever the outcome.
func (h *VoiceHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "No audio file provided")
		return
	}

	file, _, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No audio file provided")
		return
	}
	defer file.Close()

	path := h.store.NewUploadPath()
	defer h.store.Remove(path)

	if err := h.store.SaveUpload(file, path); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "failed to save upload", Error: err})
		writeError(w, http.StatusInternalServerError, "Processing failed: "+err.Error())
		return
	}

	res, err := h.dialog.Process(r.Context(), path)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "voice pipeline failed", Error: err})
		writeError(w, http.StatusInternalServerError, "Processing failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"transcribed": res.Transcribed,
		"response":    res.Response,
	})
}
