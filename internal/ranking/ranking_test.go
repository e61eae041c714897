package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip_aggregator/internal/domain"
)

func offer(id string, price float64, minutes int) domain.FlightOffer {
	return domain.FlightOffer{ID: id, Price: price, DurationMinutes: minutes}
}

func labelsByID(offers []domain.FlightOffer) map[string]string {
	out := make(map[string]string, len(offers))
	for _, o := range offers {
		out[o.ID] = o.Label
	}
	return out
}

func TestLabel_EmptyListPassesThrough(t *testing.T) {
	assert.Empty(t, Label(nil))
	assert.Empty(t, Label([]domain.FlightOffer{}))
}

func TestLabel_DistinctWinners(t *testing.T) {
	offers := Label([]domain.FlightOffer{
		offer("a", 100, 200),
		offer("b", 150, 90),
		offer("c", 120, 100),
		offer("d", 300, 300),
	})

	labels := labelsByID(offers)
	assert.Equal(t, domain.LabelCheapest, labels["a"])
	assert.Equal(t, domain.LabelFastest, labels["b"])
	assert.Equal(t, domain.LabelBestValue, labels["c"])
	assert.Empty(t, labels["d"])
}

func TestLabel_SingleOfferIsCheapest(t *testing.T) {
	offers := Label([]domain.FlightOffer{offer("only", 99, 60)})

	require.Len(t, offers, 1)
	assert.Equal(t, domain.LabelCheapest, offers[0].Label)
}

func TestLabel_CheapestBeatsFastestOnSameOffer(t *testing.T) {
	// one offer wins price and duration at once, so it gets exactly
	// one label and the runner-up categories go unassigned
	offers := Label([]domain.FlightOffer{
		offer("winner", 80, 60),
		offer("other", 200, 400),
	})

	labels := labelsByID(offers)
	assert.Equal(t, domain.LabelCheapest, labels["winner"])
	assert.Empty(t, labels["other"])
}

func TestLabel_TiesKeepFirstOccurrence(t *testing.T) {
	offers := Label([]domain.FlightOffer{
		offer("first", 100, 100),
		offer("second", 100, 100),
		offer("third", 100, 100),
	})

	labels := labelsByID(offers)
	assert.Equal(t, domain.LabelCheapest, labels["first"])
	assert.Empty(t, labels["second"])
	assert.Empty(t, labels["third"])
}

func TestLabel_AtMostOneLabelPerCategory(t *testing.T) {
	offers := Label([]domain.FlightOffer{
		offer("a", 100, 200),
		offer("b", 150, 90),
		offer("c", 120, 120),
		offer("d", 110, 130),
		offer("e", 500, 500),
	})

	counts := map[string]int{}
	for _, o := range offers {
		if o.Label != "" {
			counts[o.Label]++
		}
	}
	assert.Equal(t, 1, counts[domain.LabelCheapest])
	assert.Equal(t, 1, counts[domain.LabelFastest])
	assert.LessOrEqual(t, counts[domain.LabelBestValue], 1)
}

func TestLabel_BestValueBalancesPriceAndDuration(t *testing.T) {
	// c is neither cheapest nor fastest but minimizes the combined
	// normalized score: 110/100 + 110/100 = 2.2 against
	// a: 100/100 + 300/100 = 4.0 and b: 300/100 + 100/100 = 4.0
	offers := Label([]domain.FlightOffer{
		offer("a", 100, 300),
		offer("b", 300, 100),
		offer("c", 110, 110),
	})

	labels := labelsByID(offers)
	assert.Equal(t, domain.LabelCheapest, labels["a"])
	assert.Equal(t, domain.LabelFastest, labels["b"])
	assert.Equal(t, domain.LabelBestValue, labels["c"])
}
