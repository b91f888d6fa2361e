package pricing

// MarketTrend is the direction the market is reported to be moving.
type MarketTrend string

const (
	TrendUp     MarketTrend = "up"
	TrendDown   MarketTrend = "down"
	TrendStable MarketTrend = "stable"
)

var marketTrends = []MarketTrend{TrendUp, TrendDown, TrendStable}

// Valid reports whether t is a known trend.
func (t MarketTrend) Valid() bool {
	switch t {
	case TrendUp, TrendDown, TrendStable:
		return true
	default:
		return false
	}
}

// Tone is the presentation hint for the trend. Unknown values map to "neutral".
func (t MarketTrend) Tone() string {
	switch t {
	case TrendUp:
		return "positive"
	case TrendDown:
		return "negative"
	case TrendStable:
		return "neutral"
	default:
		return "neutral"
	}
}

// PriceQuote is the estimate returned for one request. It is never stored
// beyond the session that asked for it.
type PriceQuote struct {
	RequestID   string      `json:"requestId,omitempty"`
	CropType    string      `json:"cropType"`
	Location    string      `json:"location"`
	Quantity    float64     `json:"quantity"`   // tons
	PricePerKg  float64     `json:"pricePerKg"` // rupees, 2 decimals
	TotalPrice  float64     `json:"totalPrice"` // rupees, 2 decimals
	MarketTrend MarketTrend `json:"marketTrend"`
	LastUpdated string      `json:"lastUpdated"`
}
