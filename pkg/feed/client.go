package feed

import "time"

type Item struct {
	Title     string
	Link      string
	Summary   string
	Published *time.Time
}

type Client interface {
	Search(query string) ([]Item, error)
	Name() string
}
