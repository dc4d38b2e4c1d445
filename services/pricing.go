package services

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Month-based rate multipliers. June–August is high season, December–February low.
var (
	highSeasonRate = decimal.RequireFromString("1.20")
	lowSeasonRate  = decimal.RequireFromString("0.85")

	pointsStep  = decimal.NewFromInt(50)
	pointsAward = int64(25)
)

// SeasonalRate returns the nightly rate for a stay starting at checkIn.
func SeasonalRate(basePrice decimal.Decimal, checkIn time.Time) decimal.Decimal {
	switch checkIn.Month() {
	case time.June, time.July, time.August:
		return basePrice.Mul(highSeasonRate)
	case time.December, time.January, time.February:
		return basePrice.Mul(lowSeasonRate)
	}
	return basePrice
}

// Nights counts billable nights between check-in and check-out, rounding any
// partial day up. Values <= 0 mean an invalid date range and are the caller's
// responsibility to reject.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// StayQuote is the price breakdown for one booking request.
type StayQuote struct {
	NightlyRate decimal.Decimal
	Nights      int
	RoomCost    decimal.Decimal
	ServiceCost decimal.Decimal
	Total       decimal.Decimal
}

// QuoteStay prices a stay: seasonal nightly rate times nights, plus the sum of
// the requested service costs taken as given.
func QuoteStay(basePrice decimal.Decimal, checkIn time.Time, nights int, serviceCosts []decimal.Decimal) StayQuote {
	rate := SeasonalRate(basePrice, checkIn)
	roomCost := rate.Mul(decimal.NewFromInt(int64(nights)))

	serviceCost := decimal.Zero
	for _, c := range serviceCosts {
		serviceCost = serviceCost.Add(c)
	}

	return StayQuote{
		NightlyRate: rate,
		Nights:      nights,
		RoomCost:    roomCost,
		ServiceCost: serviceCost,
		Total:       roomCost.Add(serviceCost),
	}
}

// LoyaltyPoints awards 25 points per full $50 of the booking total.
func LoyaltyPoints(total decimal.Decimal) int64 {
	if total.Sign() <= 0 {
		return 0
	}
	return total.Div(pointsStep).IntPart() * pointsAward
}
