package api

import (
	"encoding/json"
	"net/http"

	"github.com/voxcast/voxcast/pkg/provider"
)

func (h *Handler) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var request SpeechRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	synthesizer, err := h.Synthesizer(request.Model)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	options := &provider.SynthesizeOptions{
		Voice:    request.Voice,
		Language: request.Language,

		LoudnessNormalization: request.LoudnessNormalization,
		TextNormalization:     request.TextNormalization,
	}

	if request.Format != "" {
		format, err := provider.ParseFormat(request.Format)

		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		options.Format = format
	}

	synthesis, err := synthesizer.Synthesize(r.Context(), request.Input, options)

	if err != nil {
		writeError(w, errorCode(err), err)
		return
	}

	if _, err := h.Storage.Store(synthesis.Content, synthesis.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", synthesis.ContentType)
	w.Write(synthesis.Content)
}
