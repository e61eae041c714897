package domain

// Comparison labels attached to flight offers by the ranking pass.
const (
	LabelCheapest  = "Cheapest"
	LabelFastest   = "Fastest"
	LabelBestValue = "Best Value"
)

// FlightOffer is the unified flight shape, provider-agnostic.
type FlightOffer struct {
	ID               string  `json:"id"`
	AirlineCode      string  `json:"airline_code"`
	AirlineName      string  `json:"airline_name"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	Stops            int     `json:"stops"`
	Duration         string  `json:"duration"`
	DurationMinutes  int     `json:"duration_minutes"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	OriginLabel      string  `json:"origin"`
	DestinationLabel string  `json:"destination"`
	Label            string  `json:"label,omitempty"` // set once by the ranking pass, empty = none
}

// HotelOffer is the unified hotel shape. Hotels carry no comparison label.
type HotelOffer struct {
	HotelID            string   `json:"hotel_id"`
	HotelName          string   `json:"hotel_name"`
	Address            string   `json:"address"`
	PricePerNight      float64  `json:"price_per_night"`
	TotalPrice         float64  `json:"total_price"`
	Currency           string   `json:"currency"`
	Rating             string   `json:"rating"` // provider-specific scale, kept opaque
	Amenities          []string `json:"amenities"`
	RoomType           string   `json:"room_type"`
	CityCode           string   `json:"city_code"`
	CheckInDate        string   `json:"check_in_date"`
	CheckOutDate       string   `json:"check_out_date"`
	MealPlan           string   `json:"meal_plan"`
	CancellationPolicy string   `json:"cancellation_policy"`
	ImageURL           *string  `json:"image_url,omitempty"`
}

type FlightQuery struct {
	Origin      string
	Destination string
	Date        string // YYYY-MM-DD
	Adults      int
}

type HotelQuery struct {
	CityCode string
	CheckIn  string // YYYY-MM-DD
	CheckOut string // YYYY-MM-DD
	Adults   int
}

type EventQuery struct {
	City string
}
