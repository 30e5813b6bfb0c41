package provider

import (
	"context"
	"slices"
	"strings"
)

type VoiceLister interface {
	Voices(ctx context.Context) ([]Voice, error)
}

type Voice struct {
	ID   string
	Name string

	Gender string

	Tags []string

	Models []VoiceModel
}

type VoiceModel struct {
	Name string

	Languages []VoiceLanguage
}

type VoiceLanguage struct {
	Locale string
}

type VoiceFilter struct {
	Gender string
	Locale string

	Tags []string
}

// Matches reports whether all supplied criteria hold for the voice.
// Empty criteria always pass.
func (f VoiceFilter) Matches(voice Voice) bool {
	if f.Gender != "" && !strings.EqualFold(f.Gender, voice.Gender) {
		return false
	}

	if f.Locale != "" && !voiceSupportsLocale(voice, f.Locale) {
		return false
	}

	for _, tag := range f.Tags {
		if !slices.Contains(voice.Tags, tag) {
			return false
		}
	}

	return true
}

// FilterVoiceModels returns the model names of all voices matching the
// filter, preserving the original voice and model order. Model names are not
// deduplicated across voices.
func FilterVoiceModels(voices []Voice, filter VoiceFilter) []string {
	var result []string

	for _, voice := range voices {
		if !filter.Matches(voice) {
			continue
		}

		for _, model := range voice.Models {
			result = append(result, model.Name)
		}
	}

	return result
}

func voiceSupportsLocale(voice Voice, locale string) bool {
	for _, model := range voice.Models {
		for _, language := range model.Languages {
			if language.Locale == locale {
				return true
			}
		}
	}

	return false
}
