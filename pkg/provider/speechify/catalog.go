package speechify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/voxcast/voxcast/pkg/provider"
)

var _ provider.VoiceLister = (*Synthesizer)(nil)

func (s *Synthesizer) Voices(ctx context.Context) ([]provider.Voice, error) {
	if s.token == "" {
		return nil, &provider.ConfigError{Err: errors.New("API key is required")}
	}

	req, _ := http.NewRequestWithContext(ctx, "GET", s.endpoint("/v1/voices"), nil)
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)

	if err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var data []Voice

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	var voices []provider.Voice

	for _, v := range data {
		voice := provider.Voice{
			ID:   v.ID,
			Name: v.DisplayName,

			Gender: v.Gender,

			Tags: v.Tags,
		}

		for _, m := range v.Models {
			model := provider.VoiceModel{
				Name: m.Name,
			}

			for _, l := range m.Languages {
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
