package feed

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/mmcdole/gofeed"
)

const searchFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Search results</title>
<item>
<title>Model X patches prompt injection flaw</title>
<link>https://example.com/model-x-patch</link>
<pubDate>Mon, 24 Aug 2026 10:00:00 GMT</pubDate>
<description>&lt;a href="https://example.com"&gt;Model X patches flaw. More details inside.&lt;/a&gt;</description>
</item>
<item>
<title>Undated entry</title>
<link>https://example.com/undated</link>
<description>No publish date on this one.</description>
</item>
</channel>
</rss>`

func TestGoogleNewsSearch(t *testing.T) {
	var gotPath, gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(searchFeedXML))
	}))
	defer srv.Close()

	client := &GoogleNewsClient{
		baseURL: srv.URL,
		parser:  gofeed.NewParser(),
	}

	items, err := client.Search("Model X Acme AI feature update capability release")

	assert.Equal(t, nil, err)
	assert.Equal(t, "/rss/search", gotPath)
	assert.Equal(t, "Model X Acme AI feature update capability release", gotQuery)
	assert.Equal(t, 2, len(items))

	first := items[0]
	assert.Equal(t, "Model X patches prompt injection flaw", first.Title)
	assert.Equal(t, "https://example.com/model-x-patch", first.Link)
	assert.NotEqual(t, nil, first.Published)
	assert.Equal(t, 2026, first.Published.Year())

	second := items[1]
	assert.Equal(t, "Undated entry", second.Title)
	if second.Published != nil {
		t.Fatalf("expected nil Published for undated entry, got %v", second.Published)
	}
}

func TestGoogleNewsSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := &GoogleNewsClient{
		baseURL: srv.URL,
		parser:  gofeed.NewParser(),
	}

	_, err := client.Search("anything")
	assert.NotEqual(t, nil, err)
}
