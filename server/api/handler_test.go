package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/voxcast/voxcast/config"
	"github.com/voxcast/voxcast/pkg/audio"
	"github.com/voxcast/voxcast/pkg/provider"
	"github.com/voxcast/voxcast/pkg/searcher"
	"github.com/voxcast/voxcast/pkg/summarizer"
	"github.com/voxcast/voxcast/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type mockSynthesizer struct {
	err error
}

func (p *mockSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if p.err != nil {
		return nil, p.err
	}

	if input == "" {
		return nil, &provider.ValidationError{Err: errors.New("input text must not be empty")}
	}

	return &provider.Synthesis{
		Content:     []byte("audio:" + input),
		ContentType: "audio/mpeg",

		Format: provider.FormatMP3,
	}, nil
}

type mockVoiceLister struct {
	voices []provider.Voice
}

func (p *mockVoiceLister) Voices(ctx context.Context) ([]provider.Voice, error) {
	return p.voices, nil
}

type mockSearcher struct{}

func (p *mockSearcher) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	return []searcher.Result{
		{Title: "headline", Content: "article text"},
	}, nil
}

type mockSummarizer struct{}

func (p *mockSummarizer) Summarize(ctx context.Context, input string, options *summarizer.SummarizerOptions) (*summarizer.Summary, error) {
	return &summarizer.Summary{Text: "tonight's top story"}, nil
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Storage: audio.NewStorage(t.TempDir()),
	}

	cfg.RegisterSynthesizer("mock", &mockSynthesizer{})
	cfg.RegisterVoiceLister("mock", &mockVoiceLister{
		voices: []provider.Voice{
			{
				ID:     "anna",
				Name:   "Anna",
				Gender: "female",
				Tags:   []string{"calm"},
				Models: []provider.VoiceModel{
					{Name: "simba-english", Languages: []provider.VoiceLanguage{{Locale: "en-US"}}},
				},
			},
			{
				ID:     "ben",
				Name:   "Ben",
				Gender: "male",
				Models: []provider.VoiceModel{
					{Name: "simba-multilingual", Languages: []provider.VoiceLanguage{{Locale: "de-DE"}}},
				},
			},
		},
	})

	cfg.RegisterSearcher("news", &mockSearcher{})
	cfg.RegisterSummarizer("mock", &mockSummarizer{})

	h, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/v1", h.Attach)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func TestHandleSpeech(t *testing.T) {
	server := testServer(t)

	body, _ := json.Marshal(map[string]any{
		"input": "hello",
	})

	resp, err := http.Post(server.URL+"/v1/speech", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "audio/mpeg", resp.Header.Get("Content-Type"))
}

func TestHandleSpeechEmptyInput(t *testing.T) {
	server := testServer(t)

	body, _ := json.Marshal(map[string]any{
		"input": "",
	})

	resp, err := http.Post(server.URL+"/v1/speech", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleSpeechUnknownModel(t *testing.T) {
	server := testServer(t)

	body, _ := json.Marshal(map[string]any{
		"input": "hello",
		"model": "missing",
	})

	resp, err := http.Post(server.URL+"/v1/speech", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleBriefing(t *testing.T) {
	server := testServer(t)

	body, _ := json.Marshal(map[string]any{
		"topics":  []string{"tech"},
		"sources": []string{"news"},
	})

	resp, err := http.Post(server.URL+"/v1/briefings", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
}

func TestHandleBriefingNoTopics(t *testing.T) {
	server := testServer(t)

	body, _ := json.Marshal(map[string]any{
		"topics": []string{},
	})

	resp, err := http.Post(server.URL+"/v1/briefings", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleVoices(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/v1/voices")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Voices []struct {
			ID string `json:"id"`
		} `json:"voices"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Voices, 2)
}

func TestHandleVoicesFiltered(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/v1/voices?gender=Female&locale=en-US")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Models []string `json:"models"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Equal(t, []string{"simba-english"}, result.Models)
}
