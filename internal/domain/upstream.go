package domain

import "encoding/json"

// ItemRef is one entry of a search page: the upstream id plus the URL
// where the full item detail can be fetched.
type ItemRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SearchPage is one page of upstream search results. Hits is the total
// count matching the search filters, not the page length.
type SearchPage struct {
	Hits  int
	Items []ItemRef
}

// ItemDetail is the full upstream record for one item.
type ItemDetail struct {
	ID       string
	Metadata map[string]any
	Raw      json.RawMessage
}

// ShapeRef points at one rendition of an item.
type ShapeRef struct {
	ItemID string
	URL    string
}

// ShapeDetail is the full upstream record for one rendition.
type ShapeDetail struct {
	ID   string
	Size int64
	Tag  string
	Raw  json.RawMessage
}

// MetaString extracts a string metadata field from an item detail,
// unwrapping the upstream convention of single-element value lists.
func (d *ItemDetail) MetaString(key, fallback string) string {
	v, ok := d.Metadata[key]
	if !ok || v == nil {
		return fallback
	}
	switch val := v.(type) {
	case string:
		if val == "" {
			return fallback
		}
		return val
	case []any:
		if len(val) == 0 {
			return fallback
		}
		if s, ok := val[0].(string); ok && s != "" {
			return s
		}
		return fallback
	default:
		return fallback
	}
}
