package api

import (
	"net/http"

	"github.com/voxcast/voxcast/pkg/provider"
)

func (h *Handler) handleVoices(w http.ResponseWriter, r *http.Request) {
	lister, err := h.VoiceLister(r.URL.Query().Get("model"))

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	voices, err := lister.Voices(r.Context())

	if err != nil {
		writeError(w, errorCode(err), err)
		return
	}

	query := r.URL.Query()

	filter := provider.VoiceFilter{
		Gender: query.Get("gender"),
		Locale: query.Get("locale"),

		Tags: query["tag"],
	}

	if filter.Gender == "" && filter.Locale == "" && len(filter.Tags) == 0 {
		writeJson(w, VoicesResponse{Voices: fromVoices(voices)})
		return
	}

	writeJson(w, VoicesResponse{Models: provider.FilterVoiceModels(voices, filter)})
}

func fromVoices(voices []provider.Voice) []Voice {
	var result []Voice

	for _, v := range voices {
		voice := Voice{
			ID:   v.ID,
			Name: v.Name,

			Gender: v.Gender,
			Tags:   v.Tags,
		}

		for _, m := range v.Models {
			model := VoiceModel{
				Name: m.Name,
			}

			for _, l := range m.Languages {
				model.Languages = append(model.Languages, l.Locale)
			}

			voice.Models = append(voice.Models, model)
		}

		result = append(result, voice)
	}

	return result
}
