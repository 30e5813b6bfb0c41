package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type SynthesisService struct {
	Options []RequestOption
}

func NewSynthesisService(opts ...RequestOption) SynthesisService {
	return SynthesisService{
		Options: opts,
	}
}

type SynthesizeRequest struct {
	Input string `json:"input"`

	Model string `json:"model,omitempty"`
	Voice string `json:"voice,omitempty"`

	Format   string `json:"format,omitempty"`
	Language string `json:"language,omitempty"`

	LoudnessNormalization *bool `json:"loudness_normalization,omitempty"`
	TextNormalization     *bool `json:"text_normalization,omitempty"`
}

type Synthesis struct {
	Content     []byte
	ContentType string
}

func (r *SynthesisService) New(ctx context.Context, input SynthesizeRequest, opts ...RequestOption) (*Synthesis, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, _ := json.Marshal(input)

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/v1/speech", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &Synthesis{
		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
