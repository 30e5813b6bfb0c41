package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type BriefingService struct {
	Options []RequestOption
}

func NewBriefingService(opts ...RequestOption) BriefingService {
	return BriefingService{
		Options: opts,
	}
}

type BriefingRequest struct {
	Topics  []string `json:"topics"`
	Sources []string `json:"sources,omitempty"`

	Model string `json:"model,omitempty"`
	Voice string `json:"voice,omitempty"`

	Format   string `json:"format,omitempty"`
	Language string `json:"language,omitempty"`
}

type Briefing struct {
	Content     []byte
	ContentType string
}

func (r *BriefingService) New(ctx context.Context, input BriefingRequest, opts ...RequestOption) (*Briefing, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, _ := json.Marshal(input)

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/v1/briefings", bytes.NewReader(body))
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

	return &Briefing{
		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
