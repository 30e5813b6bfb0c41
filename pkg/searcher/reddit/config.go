package reddit

import (
	"net/http"
)

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

func WithSort(val string) Option {
	return func(c *Client) {
		c.sort = val
	}
}

func WithTimeframe(val string) Option {
	return func(c *Client) {
		c.timeframe = val
	}
}
