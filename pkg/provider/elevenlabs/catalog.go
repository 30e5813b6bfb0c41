package elevenlabs

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"slices"

	"github.com/voxcast/voxcast/pkg/provider"
)

var _ provider.VoiceLister = (*Synthesizer)(nil)

func (s *Synthesizer) Voices(ctx context.Context) ([]provider.Voice, error) {
	if s.token == "" {
		return nil, &provider.ConfigError{Err: errors.New("API key is required")}
	}

	req, _ := http.NewRequestWithContext(ctx, "GET", s.endpoint("/v1/voices"), nil)
	req.Header.Set("xi-api-key", s.token)

	resp, err := s.client.Do(req)

	if err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var data VoicesResponse

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	var voices []provider.Voice

	for _, v := range data.Voices {
		voice := provider.Voice{
			ID:   v.VoiceID,
			Name: v.Name,

			Gender: v.Labels["gender"],
		}

		// remaining labels become key:value tags
		for _, key := range slices.Sorted(maps.Keys(v.Labels)) {
			if key == "gender" {
				continue
			}

			voice.Tags = append(voice.Tags, key+":"+v.Labels[key])
		}

		for _, id := range v.HighQualityBaseModelIDs {
			model := provider.VoiceModel{
				Name: id,
			}

			for _, l := range v.VerifiedLanguages {
				if l.ModelID != "" && l.ModelID != id {
					continue
				}

				model.Languages = append(model.Languages, provider.VoiceLanguage{
					Locale: l.Locale,
				})
			}

			voice.Models = append(voice.Models, model)
		}

		voices = append(voices, voice)
	}

	return voices, nil
}
