package bork

import "encoding/json"

// Wire formats of the Bork API. The search endpoint reports hits as the
// total matching count across all pages, not the page length.
type searchResponse struct {
	Hits  int               `json:"hits"`
	Items []json.RawMessage `json:"item"`
}

type searchItem struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type itemDetail struct {
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
}

// shapeListResponse keeps assets raw: the endpoint returns a list for
// items with several renditions but a bare object for a single one.
type shapeListResponse struct {
	Assets json.RawMessage `json:"assets"`
}

type shapeRef struct {
	Asset string `json:"asset"`
}

type shapeDetail struct {
	ID   string `json:"id"`
	Size int64  `json:"size"`
	Tag  string `json:"tag"`
}
