package elevenlabs

// https://elevenlabs.io/docs/api-reference/text-to-speech/convert
type SpeechRequest struct {
	Text string `json:"text"`

	ModelID string `json:"model_id,omitempty"`

	LanguageCode string `json:"language_code,omitempty"`
}

type VoicesResponse struct {
	Voices []Voice `json:"voices"`
}

type Voice struct {
	VoiceID string `json:"voice_id"`
	Name    string `json:"name"`

	Labels map[string]string `json:"labels"`

	HighQualityBaseModelIDs []string `json:"high_quality_base_model_ids"`

	VerifiedLanguages []VerifiedLanguage `json:"verified_languages"`
}

type VerifiedLanguage struct {
	Language string `json:"language"`
	Locale   string `json:"locale"`

	ModelID string `json:"model_id"`
}
