package orchestrator

import (
	"time"

	"github.com/i474232898/crop-advisor/internal/pricing"
)

// State is a step of the estimate request lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateInvalid    State = "invalid"
	StatePending    State = "pending"
	StateFulfilled  State = "fulfilled"
	StateFailed     State = "failed"
)

// Terminal reports whether s ends a submission.
func (s State) Terminal() bool {
	switch s {
	case StateInvalid, StateFulfilled, StateFailed:
		return true
	default:
		return false
	}
}

// Form is the raw user input for an estimate.
type Form struct {
	Location string `json:"location" validate:"required"`
	CropType string `json:"cropType" validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
}

// Display is what a session currently shows: its resting state, the request
// in flight (if any) and the outcome of the last finished submission.
type Display struct {
	SessionID        string               `json:"sessionId"`
	State            State                `json:"state"`
	PendingRequestID string               `json:"pendingRequestId,omitempty"`
	LastOutcome      State                `json:"lastOutcome,omitempty"`
	Reason           string               `json:"reason,omitempty"`
	Quote            *pricing.PriceQuote  `json:"quote,omitempty"`
	Recent           []pricing.PriceQuote `json:"recent,omitempty"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// Result is returned for a fulfilled submission.
type Result struct {
	SessionID string             `json:"sessionId"`
	RequestID string             `json:"requestId"`
	Quote     pricing.PriceQuote `json:"quote"`
}

// SessionStore holds per-session display state.
type SessionStore interface {
	// Update applies fn to the session's display under the store lock. The
	// change is kept only when fn returns true. Unknown sessions start idle.
	Update(sessionID string, fn func(d *Display) bool)
	Get(sessionID string) (Display, error)
}
