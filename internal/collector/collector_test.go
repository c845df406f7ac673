package collector

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"frontierwatch/internal/model"
	"frontierwatch/pkg/feed"

	"github.com/go-playground/assert/v2"
)

type fakeStore struct {
	models []model.FrontierModel
	err    error
}

func (f *fakeStore) ListModels() ([]model.FrontierModel, error) {
	return f.models, f.err
}

type fakeFeed struct {
	items   []feed.Item
	queries []string
	err     error
}

func (f *fakeFeed) Search(query string) ([]feed.Item, error) {
	f.queries = append(f.queries, query)
	return f.items, f.err
}

func (f *fakeFeed) Name() string {
	return "fake"
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ts(t time.Time) *time.Time {
	return &t
}

func TestRunBuildsQueriesPerCategory(t *testing.T) {
	store := &fakeStore{models: []model.FrontierModel{{ID: 1, Name: "Model X", Provider: "Acme"}}}
	client := &fakeFeed{}

	c := New(store, client, testLogger())
	_, err := c.Run(7, 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(client.queries))
	assert.Equal(t, "Model X Acme AI security incident vulnerability safety privacy", client.queries[0])
	assert.Equal(t, "Model X Acme AI feature update capability release", client.queries[1])
}

func TestRunSkipsEntriesWithoutPublishDate(t *testing.T) {
	now := time.Now().UTC()
	store := &fakeStore{models: []model.FrontierModel{{ID: 1, Name: "Model X", Provider: "Acme"}}}
	client := &fakeFeed{items: []feed.Item{
		{Title: "undated", Link: "https://example.com/a", Summary: "x"},
		{Title: "dated", Link: "https://example.com/b", Summary: "Fresh news. Extra.", Published: ts(now.Add(-time.Hour))},
	}}

	c := New(store, client, testLogger())
	records, err := c.Run(7, 5)

	assert.Equal(t, nil, err)
	// one kept entry per category
	assert.Equal(t, 2, len(records))
	for _, r := range records {
		assert.Equal(t, "dated", r.Title)
		assert.Equal(t, "Fresh news.", r.Description)
		assert.Equal(t, "https://example.com/b", r.SourceURL)
	}
	assert.Equal(t, model.UpdateTypeSecurity, records[0].UpdateType)
	assert.Equal(t, model.UpdateTypeFeature, records[1].UpdateType)
}

func TestRunFiltersEntriesOlderThanWindow(t *testing.T) {
	now := time.Now().UTC()
	store := &fakeStore{models: []model.FrontierModel{{ID: 1, Name: "Model X", Provider: "Acme"}}}
	client := &fakeFeed{items: []feed.Item{
		{Title: "old", Link: "https://example.com/old", Published: ts(now.AddDate(0, 0, -10))},
		{Title: "recent", Link: "https://example.com/recent", Published: ts(now.AddDate(0, 0, -2))},
	}}

	c := New(store, client, testLogger())
	records, err := c.Run(7, 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(records))
	for _, r := range records {
		assert.Equal(t, "recent", r.Title)
	}
}

func TestRunCapsEntriesPerCategory(t *testing.T) {
	now := time.Now().UTC()
	items := []feed.Item{
		{Title: "a", Link: "https://example.com/a", Published: ts(now.Add(-1 * time.Hour))},
		{Title: "b", Link: "https://example.com/b", Published: ts(now.Add(-2 * time.Hour))},
		{Title: "c", Link: "https://example.com/c", Published: ts(now.Add(-3 * time.Hour))},
	}
	store := &fakeStore{models: []model.FrontierModel{{ID: 1, Name: "Model X", Provider: "Acme"}}}
	client := &fakeFeed{items: items}

	c := New(store, client, testLogger())
	records, err := c.Run(7, 2)

	assert.Equal(t, nil, err)
	// capped at 2 per model/category pair, two categories
	assert.Equal(t, 4, len(records))
}

func TestRunAbortsOnFetchError(t *testing.T) {
	store := &fakeStore{models: []model.FrontierModel{{ID: 1, Name: "Model X", Provider: "Acme"}}}
	client := &fakeFeed{err: errors.New("network down")}

	c := New(store, client, testLogger())
	records, err := c.Run(7, 5)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(records))
}
