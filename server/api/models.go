package api

type BriefingRequest struct {
	Topics  []string `json:"topics"`
	Sources []string `json:"sources,omitempty"`

	Model string `json:"model,omitempty"`
	Voice string `json:"voice,omitempty"`

	Format   string `json:"format,omitempty"`
	Language string `json:"language,omitempty"`
}

type SpeechRequest struct {
	Input string `json:"input"`

	Model string `json:"model,omitempty"`
	Voice string `json:"voice,omitempty"`

	Format   string `json:"format,omitempty"`
	Language string `json:"language,omitempty"`

	LoudnessNormalization *bool `json:"loudness_normalization,omitempty"`
	TextNormalization     *bool `json:"text_normalization,omitempty"`
}

type Voice struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Gender string   `json:"gender,omitempty"`
	Tags   []string `json:"tags,omitempty"`

	Models []VoiceModel `json:"models,omitempty"`
}

type VoiceModel struct {
	Name string `json:"name"`

	Languages []string `json:"languages,omitempty"`
}

type VoicesResponse struct {
	Voices []Voice `json:"voices,omitempty"`

	Models []string `json:"models,omitempty"`
}
