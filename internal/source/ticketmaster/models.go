package ticketmaster

// APIResponse is the Discovery API events search response.
type APIResponse struct {
	Embedded *Embedded `json:"_embedded"`
}

type Embedded struct {
	Events []Event `json:"events"`
}

type Event struct {
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Dates           *Dates           `json:"dates"`
	Images          []Image          `json:"images"`
	Classifications []Classification `json:"classifications"`
	Embedded        *EventEmbedded   `json:"_embedded"`
}

type Dates struct {
	Start *DateStart `json:"start"`
}

type DateStart struct {
	LocalDate string `json:"localDate"`
}

type Image struct {
	URL string `json:"url"`
}

type Classification struct {
	Segment *Segment `json:"segment"`
}

type Segment struct {
	Name string `json:"name"`
}

type EventEmbedded struct {
	Venues []Venue `json:"venues"`
}

type Venue struct {
	Name string `json:"name"`
	City *City  `json:"city"`
}

type City struct {
	Name string `json:"name"`
}
