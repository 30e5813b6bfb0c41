package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/voxcast/voxcast/pkg/searcher"
)

var _ searcher.Provider = &Client{}

type Client struct {
	url    string
	client *http.Client

	sort      string
	timeframe string
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		url:    "https://www.reddit.com",
		client: http.DefaultClient,

		sort:      "relevance",
		timeframe: "week",
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	if options == nil {
		options = new(searcher.SearchOptions)
	}

	limit := 10

	if options.Limit != nil {
		limit = *options.Limit
	}

	values := url.Values{}
	values.Set("q", query)
	values.Set("sort", c.sort)
	values.Set("t", c.timeframe)
	values.Set("limit", strconv.Itoa(limit))

	req, _ := http.NewRequestWithContext(ctx, "GET", strings.TrimRight(c.url, "/")+"/search.json?"+values.Encode(), nil)
	req.Header.Set("User-Agent", "voxcast/1.0")

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.New(strings.TrimSpace(string(body)))
	}

	var data Listing

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	var results []searcher.Result

	for _, child := range data.Data.Children {
		post := child.Data

		content := post.SelfText

		if content == "" {
			content = post.Title
		}

		result := searcher.Result{
			Source: "https://www.reddit.com" + post.Permalink,

			Title:   post.Title,
			Content: content,
		}

		results = append(results, result)
	}

	return results, nil
}
