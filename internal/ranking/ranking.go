package ranking

import "trip_aggregator/internal/domain"

// Label attaches comparison labels to a list of flight offers:
//
//   - Cheapest: minimal price
//   - Fastest: minimal duration
//   - Best Value: minimal price/minPrice + duration/minDuration
//
// Ties break on first occurrence. An offer carries at most one label, with
// Cheapest taking priority over Fastest, and Best Value only going to an
// offer that won neither of the other two. An empty list passes through
// untouched.
func Label(offers []domain.FlightOffer) []domain.FlightOffer {
	if len(offers) == 0 {
		return offers
	}

	cheapest := 0
	fastest := 0
	for i := range offers {
		if offers[i].Price < offers[cheapest].Price {
			cheapest = i
		}
		if offers[i].DurationMinutes < offers[fastest].DurationMinutes {
			fastest = i
		}
	}

	minPrice := offers[cheapest].Price
	minDuration := float64(offers[fastest].DurationMinutes)

	bestValue := 0
	bestScore := score(offers[0], minPrice, minDuration)
	for i := 1; i < len(offers); i++ {
		if s := score(offers[i], minPrice, minDuration); s < bestScore {
			bestValue = i
			bestScore = s
		}
	}

	for i := range offers {
		switch {
		case i == cheapest:
			offers[i].Label = domain.LabelCheapest
		case i == fastest:
			offers[i].Label = domain.LabelFastest
		case i == bestValue:
			offers[i].Label = domain.LabelBestValue
		}
	}

	return offers
}

func score(o domain.FlightOffer, minPrice, minDuration float64) float64 {
	return o.Price/minPrice + float64(o.DurationMinutes)/minDuration
}
