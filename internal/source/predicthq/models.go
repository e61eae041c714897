package predicthq

import "encoding/json"

// APIResponse is the events search response.
type APIResponse struct {
	Results []Event `json:"results"`
}

type Event struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Start    string   `json:"start"` // ISO datetime
	Category string   `json:"category"`
	Entities []Entity `json:"entities"`
	// Location is usually a coordinate pair but occasionally a plain
	// string; kept raw and probed during mapping.
	Location json.RawMessage `json:"location"`
}

type Entity struct {
	Name string `json:"name"`
}
