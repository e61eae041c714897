package domain

import "time"

// Search kinds recorded in the audit log and published messages.
const (
	SearchKindFlights = "flights"
	SearchKindHotels  = "hotels"
	SearchKindEvents  = "events"
)

// SearchRecord describes one completed search: the query parameters and the
// outcome counts. It never carries offers; results live only for the query
// that produced them.
type SearchRecord struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	Params      string        `json:"params"`
	ResultCount int           `json:"result_count"`
	Duration    time.Duration `json:"duration"`
	CreatedAt   time.Time     `json:"created_at"`
}
