package model

import (
	"time"
)

// GlutenFlag is the yes/no answer to "does this food contain gluten".
type GlutenFlag string

const (
	GlutenYes GlutenFlag = "yes"
	GlutenNo  GlutenFlag = "no"
)

type GlutenInfo struct {
	Gluten      GlutenFlag `json:"gluten"`
	Description string     `json:"description"`
}

// Food is a record of the mock catalog.
type Food struct {
	FoodID     string     `json:"foodId"`
	GlutenFree GlutenInfo `json:"glutenFree"`
}

// RelayKind names the relay that produced a RelayRecord.
type RelayKind string

const (
	RelayKindSearch RelayKind = "search"
	RelayKindLookup RelayKind = "lookup"
)

// RelayRecord is one row of relay history.
type RelayRecord struct {
	ID                 string    `json:"id"`
	Kind               RelayKind `json:"kind"`
	CallerID           string    `json:"caller_id"`
	UpstreamURL        string    `json:"upstream_url"`
	UpstreamStatusCode *int      `json:"upstream_status_code"`
	DurationMs         int64     `json:"duration_ms"`
	Error              string    `json:"error,omitempty"`
	ExecutedAt         time.Time `json:"executed_at"`
}
