package domain

// EventItem is the unified event shape produced by either events source.
// Source holds the provider id, so callers can tell primary results from
// fallback results.
type EventItem struct {
	Name     string  `json:"name"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Venue    string  `json:"venue"`
	ImageURL *string `json:"image_url,omitempty"`
	Link     string  `json:"link"`
	Category string  `json:"category"`
	Source   string  `json:"source"`
}
