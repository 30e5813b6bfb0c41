package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
)

type VoiceService struct {
	Options []RequestOption
}

func NewVoiceService(opts ...RequestOption) VoiceService {
	return VoiceService{
		Options: opts,
	}
}

type VoiceFilter struct {
	Gender string
	Locale string

	Tags []string
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
	Voices []Voice  `json:"voices,omitempty"`
	Models []string `json:"models,omitempty"`
}

func (r *VoiceService) List(ctx context.Context, filter *VoiceFilter, opts ...RequestOption) (*VoicesResponse, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	query := url.Values{}

	if filter != nil {
		if filter.Gender != "" {
			query.Set("gender", filter.Gender)
		}

		if filter.Locale != "" {
			query.Set("locale", filter.Locale)
		}

		for _, tag := range filter.Tags {
			query.Add("tag", tag)
		}
	}

	u := c.URL + "/v1/voices"

	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, _ := http.NewRequestWithContext(ctx, "GET", u, nil)
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

	var result VoicesResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
