package feed

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

type GoogleNewsClient struct {
	baseURL string
	parser  *gofeed.Parser
}

func NewGoogleNewsClient() *GoogleNewsClient {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 30 * time.Second}
	return &GoogleNewsClient{
		baseURL: "https://news.google.com",
		parser:  parser,
	}
}

func (c *GoogleNewsClient) Name() string {
	return "GoogleNews"
}

// Search fetches the RSS search feed for the given query. Entries whose
// publish timestamp cannot be parsed carry a nil Published.
func (c *GoogleNewsClient) Search(query string) ([]Item, error) {
	feedURL := fmt.Sprintf("%s/rss/search?q=%s", c.baseURL, url.QueryEscape(query))

	parsed, err := c.parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("google news fetch: %w", err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		summary := entry.Description
		if summary == "" {
			summary = entry.Content
		}

		items = append(items, Item{
			Title:     entry.Title,
			Link:      entry.Link,
			Summary:   summary,
			Published: entry.PublishedParsed,
		})
	}

	return items, nil
}
