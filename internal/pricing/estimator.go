package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	// ErrInvalidInput is returned for structurally invalid estimate requests.
	ErrInvalidInput = errors.New("invalid estimate input")
	// ErrUnavailable is returned while the estimator circuit is open.
	ErrUnavailable = errors.New("estimator unavailable")
)

const (
	maxFluctuation = 2.0 // rupees either side of the base price
	minPricePerKg  = 5.0
	kgPerTon       = 1000
)

// LastUpdatedLayout renders quote timestamps the way the browser form showed them.
const LastUpdatedLayout = "1/2/2006, 3:04:05 PM"

// Estimator produces a price quote for a crop at a location.
type Estimator interface {
	Estimate(ctx context.Context, cropType, location string, quantityTons float64) (PriceQuote, error)
}

// TableEstimator quotes prices from the static base-price table with a random
// perturbation and trend.
type TableEstimator struct {
	rng   RandomSource
	delay Delay
	now   func() time.Time
}

// NewTableEstimator creates a TableEstimator. A nil delay means NoDelay and a
// nil clock means time.Now.
func NewTableEstimator(rng RandomSource, delay Delay, now func() time.Time) *TableEstimator {
	if rng == nil {
		rng = NewRandomSource(0)
	}
	if delay == nil {
		delay = NoDelay
	}
	if now == nil {
		now = time.Now
	}
	return &TableEstimator{rng: rng, delay: delay, now: now}
}

// Estimate waits for the configured delay and then prices quantityTons of
// cropType at location. Unknown crops or cities use DefaultBasePrice.
func (e *TableEstimator) Estimate(ctx context.Context, cropType, location string, quantityTons float64) (PriceQuote, error) {
	if strings.TrimSpace(cropType) == "" || strings.TrimSpace(location) == "" {
		return PriceQuote{}, fmt.Errorf("%w: crop type and location are required", ErrInvalidInput)
	}
	if math.IsNaN(quantityTons) || math.IsInf(quantityTons, 0) || quantityTons <= 0 {
		return PriceQuote{}, fmt.Errorf("%w: quantity must be a positive number, got %v", ErrInvalidInput, quantityTons)
	}

	if err := e.delay.Wait(ctx); err != nil {
		return PriceQuote{}, err
	}

	base, _ := BasePrice(cropType, location)

	// Float64 is in [0, 1), so the fluctuation is in [-2, 2).
	fluctuation := (e.rng.Float64() - 0.5) * 2 * maxFluctuation
	pricePerKg := round2(math.Max(base+fluctuation, minPricePerKg))
	trend := marketTrends[e.rng.IntN(len(marketTrends))]

	return PriceQuote{
		CropType:    cropType,
		Location:    location,
		Quantity:    quantityTons,
		PricePerKg:  pricePerKg,
		TotalPrice:  TotalFor(pricePerKg, quantityTons),
		MarketTrend: trend,
		LastUpdated: e.now().Format(LastUpdatedLayout),
	}, nil
}

// TotalFor is the value of quantityTons at pricePerKg, rounded to paise.
func TotalFor(pricePerKg, quantityTons float64) float64 {
	return round2(pricePerKg * quantityTons * kgPerTon)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
