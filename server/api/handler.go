package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/voxcast/voxcast/config"
	"github.com/voxcast/voxcast/pkg/provider"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/briefings", h.handleBriefing)
	r.Post("/speech", h.handleSpeech)

	r.Get("/voices", h.handleVoices)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}

func errorCode(err error) int {
	var validation *provider.ValidationError

	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
