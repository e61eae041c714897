package amadeus

// Response structures for the Amadeus self-service APIs. Payloads are
// decoded once into these; optional parts are pointers or zero values.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// FlightOffersResponse is the flight-offers search response.
type FlightOffersResponse struct {
	Data         []FlightOfferData `json:"data"`
	Dictionaries Dictionaries      `json:"dictionaries"`
}

type Dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

type FlightOfferData struct {
	ID          string      `json:"id"`
	Itineraries []Itinerary `json:"itineraries"`
	Price       Price       `json:"price"`
}

type Itinerary struct {
	Duration string    `json:"duration"` // PT<h>H<m>M
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
}

type Endpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"` // ISO datetime, e.g. 2024-06-01T08:45:00
}

// Price totals arrive as decimal strings.
type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// HotelListResponse is the hotels-by-city response.
type HotelListResponse struct {
	Data []HotelListEntry `json:"data"`
}

type HotelListEntry struct {
	HotelID string `json:"hotelId"`
	Name    string `json:"name"`
}

// HotelOffersResponse is the hotel-offers search response.
type HotelOffersResponse struct {
	Data []HotelOfferData `json:"data"`
}

type HotelOfferData struct {
	Hotel  HotelInfo        `json:"hotel"`
	Offers []HotelOfferItem `json:"offers"`
}

type HotelInfo struct {
	HotelID  string `json:"hotelId"`
	Name     string `json:"name"`
	CityCode string `json:"cityCode"`
	Rating   string `json:"rating"`
}

type HotelOfferItem struct {
	Price         Price          `json:"price"`
	Room          *Room          `json:"room"`
	BoardFoodPlan *BoardFoodPlan `json:"boardFoodPlan"`
	Policies      *Policies      `json:"policies"`
	Amenities     []string       `json:"amenities"`
}

type Room struct {
	TypeEstimated *RoomTypeEstimated `json:"typeEstimated"`
}

type RoomTypeEstimated struct {
	Category string `json:"category"`
}

type BoardFoodPlan struct {
	Type string `json:"type"`
}

type Policies struct {
	Cancellations []Cancellation `json:"cancellations"`
}

type Cancellation struct {
	Description *CancellationDescription `json:"description"`
}

type CancellationDescription struct {
	Text string `json:"text"`
}
