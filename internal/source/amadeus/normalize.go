package amadeus

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"trip_aggregator/internal/domain"
)

// Normalization maps decoded Amadeus responses onto the unified offer
// shapes. Pure functions, no I/O. A schema violation on any entry discards
// the whole batch: the failure policy is batch-level, not per item.

var (
	durationHours   = regexp.MustCompile(`(\d+)H`)
	durationMinutes = regexp.MustCompile(`(\d+)M`)
)

// NormalizeFlightOffers maps a flight-offers response to unified offers.
// Only the first itinerary of each offer is considered.
func NormalizeFlightOffers(resp *FlightOffersResponse, q domain.FlightQuery) ([]domain.FlightOffer, error) {
	offers := make([]domain.FlightOffer, 0, len(resp.Data))

	for _, entry := range resp.Data {
		if entry.ID == "" || len(entry.Itineraries) == 0 {
			return nil, fmt.Errorf("%w: offer without id or itineraries", domain.ErrMalformedPayload)
		}

		itin := entry.Itineraries[0]
		if len(itin.Segments) == 0 {
			return nil, fmt.Errorf("%w: itinerary without segments", domain.ErrMalformedPayload)
		}

		first := itin.Segments[0]
		last := itin.Segments[len(itin.Segments)-1]

		departure, err := timeOfDay(first.Departure.At)
		if err != nil {
			return nil, err
		}
		arrival, err := timeOfDay(last.Arrival.At)
		if err != nil {
			return nil, err
		}

		price, err := strconv.ParseFloat(entry.Price.Total, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: price %q: %v", domain.ErrMalformedPayload, entry.Price.Total, err)
		}

		carrier := first.CarrierCode
		airlineName := carrier
		if name, ok := resp.Dictionaries.Carriers[carrier]; ok {
			airlineName = name
		}

		offers = append(offers, domain.FlightOffer{
			ID:               entry.ID,
			AirlineCode:      carrier,
			AirlineName:      airlineName,
			Price:            price,
			Currency:         entry.Price.Currency,
			Stops:            len(itin.Segments) - 1,
			Duration:         FormatDuration(itin.Duration),
			DurationMinutes:  ParseDurationMinutes(itin.Duration),
			DepartureTime:    departure,
			ArrivalTime:      arrival,
			OriginLabel:      q.Origin,
			DestinationLabel: q.Destination,
		})
	}

	return offers, nil
}

// NormalizeHotelOffers maps a hotel-offers response to unified offers.
// Hotels without offers are skipped; for the rest only the first offer
// counts, anything beyond index 0 is ignored.
func NormalizeHotelOffers(resp *HotelOffersResponse, q domain.HotelQuery) ([]domain.HotelOffer, error) {
	nights := stayNights(q.CheckIn, q.CheckOut)

	offers := make([]domain.HotelOffer, 0, len(resp.Data))

	for _, entry := range resp.Data {
		if len(entry.Offers) == 0 {
			continue
		}
		if entry.Hotel.HotelID == "" || entry.Hotel.Name == "" {
			return nil, fmt.Errorf("%w: hotel without id or name", domain.ErrMalformedPayload)
		}

		offer := entry.Offers[0]
		total, err := strconv.ParseFloat(offer.Price.Total, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: price %q: %v", domain.ErrMalformedPayload, offer.Price.Total, err)
		}

		cityCode := entry.Hotel.CityCode
		if cityCode == "" {
			cityCode = q.CityCode
		}

		rating := entry.Hotel.Rating
		if rating == "" {
			rating = "N/A"
		}

		offers = append(offers, domain.HotelOffer{
			HotelID:            entry.Hotel.HotelID,
			HotelName:          entry.Hotel.Name,
			Address:            "City Code: " + cityCode,
			PricePerNight:      total / float64(nights),
			TotalPrice:         total,
			Currency:           offer.Price.Currency,
			Rating:             rating,
			Amenities:          offer.Amenities,
			RoomType:           roomType(offer.Room),
			CityCode:           q.CityCode,
			CheckInDate:        q.CheckIn,
			CheckOutDate:       q.CheckOut,
			MealPlan:           mealPlan(offer.BoardFoodPlan),
			CancellationPolicy: cancellationPolicy(offer.Policies),
		})
	}

	return offers, nil
}

// ParseDurationMinutes parses a PT<h>H<m>M duration token. Either component
// may be missing; an unparsable token counts as 0 minutes.
func ParseDurationMinutes(duration string) int {
	hours := 0
	if m := durationHours.FindStringSubmatch(duration); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	minutes := 0
	if m := durationMinutes.FindStringSubmatch(duration); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}
	return hours*60 + minutes
}

// FormatDuration renders PT2H30M as "2h 30m" for display.
func FormatDuration(duration string) string {
	s := strings.TrimPrefix(duration, "PT")
	s = strings.ReplaceAll(s, "H", "h ")
	s = strings.ReplaceAll(s, "M", "m")
	return strings.TrimSpace(strings.ToLower(s))
}

// timeOfDay slices HH:MM out of an ISO datetime.
func timeOfDay(at string) (string, error) {
	if len(at) < 16 {
		return "", fmt.Errorf("%w: short datetime %q", domain.ErrMalformedPayload, at)
	}
	return at[11:16], nil
}

// stayNights derives the stay length from the check-in/out dates, never
// less than one night.
func stayNights(checkIn, checkOut string) int {
	in, errIn := time.Parse("2006-01-02", checkIn)
	out, errOut := time.Parse("2006-01-02", checkOut)
	if errIn != nil || errOut != nil {
		return 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

func roomType(room *Room) string {
	if room != nil && room.TypeEstimated != nil && room.TypeEstimated.Category != "" {
		return room.TypeEstimated.Category
	}
	return "Standard Room"
}

func mealPlan(plan *BoardFoodPlan) string {
	if plan != nil && strings.Contains(strings.ToUpper(plan.Type), "BREAKFAST") {
		return "Breakfast included"
	}
	return "Room Only"
}

func cancellationPolicy(policies *Policies) string {
	if policies != nil && len(policies.Cancellations) > 0 {
		if d := policies.Cancellations[0].Description; d != nil && d.Text != "" {
			return d.Text
		}
	}
	return "Check details at check-in"
}
