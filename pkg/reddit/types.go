package reddit

import (
	"encoding/json"

	"github.com/shanelightowler/crypto-daily-mentions/models"
)

// listing mirrors the slice of Reddit's Listing JSON envelope we actually
// consume. Every payload is a kind/data pair; children nest recursively for
// comment trees.
type listing struct {
	Kind string      `json:"kind"`
	Data listingData `json:"data"`
}

type listingData struct {
	After    string  `json:"after"`
	Children []thing `json:"children"`
}

type thing struct {
	Kind string    `json:"kind"`
	Data thingData `json:"data"`
}

type thingData struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Permalink  string          `json:"permalink"`
	Author     string          `json:"author"`
	Body       string          `json:"body"`
	BodyHTML   string          `json:"body_html"`
	CreatedUTC float64         `json:"created_utc"`
	Replies    json.RawMessage `json:"replies"`
	Children   []string        `json:"children"`
}

func (t thingData) comment() models.Comment {
	return models.Comment{
		ID:       t.ID,
		Author:   t.Author,
		Body:     t.Body,
		BodyHTML: t.BodyHTML,
	}
}
