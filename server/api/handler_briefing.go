package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/voxcast/voxcast/pkg/briefing"
	"github.com/voxcast/voxcast/pkg/provider"
)

func (h *Handler) handleBriefing(w http.ResponseWriter, r *http.Request) {
	var request BriefingRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	synthesizer, err := h.Synthesizer(request.Model)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	summarizer, err := h.Summarizer("")

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	generator, err := briefing.New(h.Searchers(), summarizer, synthesizer, h.Storage)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	options := &briefing.GenerateOptions{
		Sources: request.Sources,

		Voice:    request.Voice,
		Language: request.Language,
	}

	if request.Format != "" {
		format, err := provider.ParseFormat(request.Format)

		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		options.Format = format
	}

	result, err := generator.Generate(r.Context(), request.Topics, options)

	if err != nil {
		writeError(w, errorCode(err), err)
		return
	}

	data, err := os.ReadFile(result.Path)

	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("unable to read briefing audio"))
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filepath.Base(result.Path))

	w.Write(data)
}
