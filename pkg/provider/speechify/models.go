package speechify

// https://docs.sws.speechify.com/v1/api-reference/api-reference/tts/audio/speech
type SpeechRequest struct {
	Input string `json:"input"`

	VoiceID string `json:"voice_id"`

	Model    string `json:"model,omitempty"`
	Language string `json:"language,omitempty"`

	AudioFormat string `json:"audio_format,omitempty"`

	Options *SpeechOptions `json:"options,omitempty"`
}

type SpeechOptions struct {
	LoudnessNormalization bool `json:"loudness_normalization"`
	TextNormalization     bool `json:"text_normalization"`
}

type SpeechResponse struct {
	AudioData   string `json:"audio_data"`
	AudioFormat string `json:"audio_format"`

	BillableCharactersCount int `json:"billable_characters_count"`
}

type Voice struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`

	Gender string `json:"gender"`

	Tags []string `json:"tags"`

	Models []VoiceModel `json:"models"`
}

type VoiceModel struct {
	Name string `json:"name"`

	Languages []VoiceLanguage `json:"languages"`
}

type VoiceLanguage struct {
	Locale string `json:"locale"`
}
