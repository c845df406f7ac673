package collector

import (
	"fmt"
	"log/slog"
	"time"

	"frontierwatch/internal/model"
	"frontierwatch/pkg/feed"
)

type ModelStore interface {
	ListModels() ([]model.FrontierModel, error)
}

type category struct {
	updateType string
	phrase     string
}

var categories = []category{
	{model.UpdateTypeSecurity, "security incident vulnerability safety privacy"},
	{model.UpdateTypeFeature, "feature update capability release"},
}

type Collector struct {
	store ModelStore
	feed  feed.Client
	log   *slog.Logger
}

func New(store ModelStore, client feed.Client, log *slog.Logger) *Collector {
	return &Collector{store: store, feed: client, log: log}
}

// Run scrapes one update record per kept feed entry for every tracked model
// and category. Entries older than the recency window or without a parseable
// publish date are skipped, and each model/category pair is capped at
// maxResults entries. Any fetch failure aborts the whole run.
func (c *Collector) Run(days int, maxResults int) ([]model.ModelUpdate, error) {
	c.log.Info("fetching models from database")
	models, err := c.store.ListModels()
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	c.log.Info("models loaded", "count", len(models))

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	c.log.Info("using cutoff", "cutoff", cutoff.Format(time.RFC3339))

	var records []model.ModelUpdate
	for _, m := range models {
		c.log.Info("processing model", "model", m.Name)
		modelCount := 0

		for _, cat := range categories {
			query := fmt.Sprintf("%s %s AI %s", m.Name, m.Provider, cat.phrase)
			c.log.Debug("fetching feed", "source", c.feed.Name(), "query", query)

			items, err := c.feed.Search(query)
			if err != nil {
				return nil, fmt.Errorf("search %q: %w", query, err)
			}
			c.log.Debug("entries fetched", "model", m.Name, "type", cat.updateType, "count", len(items))

			count := 0
			for _, item := range items {
				if item.Published == nil {
					continue
				}

				published := item.Published.UTC()
				if published.Before(cutoff) {
					continue
				}

				records = append(records, model.ModelUpdate{
					FrontierModelID: m.ID,
					Title:           item.Title,
					Description:     CleanSummary(item.Summary),
					UpdateType:      cat.updateType,
					SourceURL:       item.Link,
					UpdateDate:      published,
				})
				count++
				modelCount++

				if count >= maxResults {
					break
				}
			}
			c.log.Info("category complete", "model", m.Name, "type", cat.updateType, "added", count)
		}
		c.log.Info("model complete", "model", m.Name, "total", modelCount)
	}

	return records, nil
}
