package client

import (
	"net/http"
)

type Client struct {
	Briefings BriefingService
	Syntheses SynthesisService

	Voices VoiceService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Briefings: NewBriefingService(opts...),
		Syntheses: NewSynthesisService(opts...),

		Voices: NewVoiceService(opts...),
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func Ptr[T any](v T) *T {
	return &v
}
