package pricing

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed values so tests can pin the perturbation and trend.
type scriptedSource struct {
	f float64
	i int
}

func (s scriptedSource) Float64() float64 { return s.f }
func (s scriptedSource) IntN(n int) int   { return s.i % n }

var fixedNow = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC) }

func TestEstimateWithinBoundsForKnownPairs(t *testing.T) {
	e := NewTableEstimator(NewRandomSource(42), NoDelay, nil)
	ctx := context.Background()

	for crop, byCity := range basePrices {
		for city, base := range byCity {
			for i := 0; i < 20; i++ {
				q, err := e.Estimate(ctx, crop, city, 1.5)
				require.NoError(t, err)

				lo := math.Max(base-maxFluctuation, minPricePerKg)
				hi := math.Max(base+maxFluctuation, minPricePerKg)
				assert.GreaterOrEqual(t, q.PricePerKg, lo, "%s/%s", crop, city)
				assert.LessOrEqual(t, q.PricePerKg, hi, "%s/%s", crop, city)
				assert.GreaterOrEqual(t, q.PricePerKg, 5.0)
				assert.True(t, q.MarketTrend.Valid())
			}
		}
	}
}

func TestEstimateUsesDefaultBaseForUnknownPairs(t *testing.T) {
	// 0.5 draws a zero perturbation, exposing the base price.
	e := NewTableEstimator(scriptedSource{f: 0.5}, NoDelay, fixedNow)
	ctx := context.Background()

	pairs := [][2]string{
		{"Coffee", "Delhi"},
		{"Wheat", "Nagpur"},
		{"Quinoa", "Atlantis"},
		{"Wheat", "New Delhi"},
	}
	for _, p := range pairs {
		q, err := e.Estimate(ctx, p[0], p[1], 1)
		require.NoError(t, err)
		assert.Equal(t, 30.00, q.PricePerKg, "%v", p)
	}
}

func TestEstimateKnownBaseIsCaseInsensitive(t *testing.T) {
	e := NewTableEstimator(scriptedSource{f: 0.5}, NoDelay, fixedNow)
	q, err := e.Estimate(context.Background(), "RICE", "Mumbai", 2)
	require.NoError(t, err)
	assert.Equal(t, 48.50, q.PricePerKg)
	assert.Equal(t, 97000.00, q.TotalPrice)
	assert.Equal(t, "RICE", q.CropType)
	assert.Equal(t, "Mumbai", q.Location)
}

func TestEstimateClampsToFloor(t *testing.T) {
	// Sugarcane sits near 3.5/kg, far below the floor.
	e := NewTableEstimator(scriptedSource{f: 0}, NoDelay, fixedNow)
	q, err := e.Estimate(context.Background(), "sugarcane", "jaipur", 1)
	require.NoError(t, err)
	assert.Equal(t, 5.00, q.PricePerKg)
	assert.Equal(t, 5000.00, q.TotalPrice)
}

func TestEstimatePerturbationEdges(t *testing.T) {
	ctx := context.Background()

	low := NewTableEstimator(scriptedSource{f: 0}, NoDelay, fixedNow)
	q, err := low.Estimate(ctx, "wheat", "delhi", 1)
	require.NoError(t, err)
	assert.Equal(t, 23.50, q.PricePerKg)

	high := NewTableEstimator(scriptedSource{f: 0.999999}, NoDelay, fixedNow)
	q, err = high.Estimate(ctx, "wheat", "delhi", 1)
	require.NoError(t, err)
	assert.Equal(t, 27.50, q.PricePerKg)
}

func TestEstimateTotalMatchesRoundedPrice(t *testing.T) {
	e := NewTableEstimator(NewRandomSource(7), NoDelay, nil)
	ctx := context.Background()

	quantities := []float64{0.01, 0.333, 1, 2.5, 7.77, 120, 1e-3}
	for _, qty := range quantities {
		for _, crop := range Crops() {
			q, err := e.Estimate(ctx, crop, "Pune", qty)
			require.NoError(t, err)
			assert.Equal(t, round2(q.PricePerKg*qty*1000), q.TotalPrice, "%s x %v", crop, qty)
			assert.Equal(t, qty, q.Quantity)
		}
	}
}

func TestEstimateTrendFromSource(t *testing.T) {
	ctx := context.Background()
	for i, want := range []MarketTrend{TrendUp, TrendDown, TrendStable} {
		e := NewTableEstimator(scriptedSource{f: 0.5, i: i}, NoDelay, fixedNow)
		q, err := e.Estimate(ctx, "maize", "chennai", 1)
		require.NoError(t, err)
		assert.Equal(t, want, q.MarketTrend)
	}
}

func TestEstimateRepeatedCallsStayInBounds(t *testing.T) {
	e := NewTableEstimator(NewRandomSource(0), NoDelay, nil)
	ctx := context.Background()

	a, err := e.Estimate(ctx, "cotton", "hyderabad", 3)
	require.NoError(t, err)
	b, err := e.Estimate(ctx, "cotton", "hyderabad", 3)
	require.NoError(t, err)

	for _, q := range []PriceQuote{a, b} {
		assert.InDelta(t, 60.50, q.PricePerKg, 2.0)
		assert.Equal(t, TotalFor(q.PricePerKg, 3), q.TotalPrice)
	}
}

func TestEstimateTimestamp(t *testing.T) {
	e := NewTableEstimator(scriptedSource{f: 0.5}, NoDelay, fixedNow)
	q, err := e.Estimate(context.Background(), "wheat", "delhi", 1)
	require.NoError(t, err)
	assert.Equal(t, "3/5/2024, 2:07:09 PM", q.LastUpdated)
}

func TestEstimateRejectsInvalidInput(t *testing.T) {
	e := NewTableEstimator(scriptedSource{f: 0.5}, NoDelay, fixedNow)
	ctx := context.Background()

	for _, qty := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := e.Estimate(ctx, "wheat", "delhi", qty)
		assert.ErrorIs(t, err, ErrInvalidInput, "quantity %v", qty)
	}
	_, err := e.Estimate(ctx, "", "delhi", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = e.Estimate(ctx, "wheat", "  ", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEstimateHonoursContextDuringDelay(t *testing.T) {
	e := NewTableEstimator(scriptedSource{f: 0.5}, FixedDelay(time.Minute), fixedNow)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Estimate(ctx, "wheat", "delhi", 1)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFixedDelayWaits(t *testing.T) {
	start := time.Now()
	require.NoError(t, FixedDelay(20*time.Millisecond).Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.NoError(t, NoDelay.Wait(context.Background()))
}

func TestBasePrice(t *testing.T) {
	p, ok := BasePrice("Cotton", "Mumbai")
	assert.True(t, ok)
	assert.Equal(t, 62.50, p)

	p, ok = BasePrice("cotton", "Surat")
	assert.False(t, ok)
	assert.Equal(t, DefaultBasePrice, p)
}

func TestCropsHaveBasePrices(t *testing.T) {
	for _, crop := range Crops() {
		_, ok := BasePrice(crop, "Delhi")
		assert.True(t, ok, crop)
	}
}

func TestTrendTone(t *testing.T) {
	assert.Equal(t, "positive", TrendUp.Tone())
	assert.Equal(t, "negative", TrendDown.Tone())
	assert.Equal(t, "neutral", TrendStable.Tone())
	assert.Equal(t, "neutral", MarketTrend("sideways").Tone())
	assert.False(t, MarketTrend("sideways").Valid())
}
