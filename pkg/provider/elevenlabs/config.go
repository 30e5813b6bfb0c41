package elevenlabs

import (
	"net/http"
	"strings"
)

type Config struct {
	url string

	token string

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func (c *Config) endpoint(path string) string {
	url := c.url

	if url == "" {
		url = "https://api.elevenlabs.io"
	}

	return strings.TrimRight(url, "/") + path
}
