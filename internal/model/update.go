package model

import "time"

const (
	UpdateTypeSecurity = "security"
	UpdateTypeFeature  = "feature"
)

type FrontierModel struct {
	ID       int64
	Name     string
	Provider string
}

type ModelUpdate struct {
	ID              int64
	FrontierModelID int64
	Title           string
	Description     string
	UpdateType      string
	SourceURL       string
	UpdateDate      time.Time
}
