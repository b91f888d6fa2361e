package orchestrator

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/crop-advisor/internal/pricing"
)

// Orchestrator validates estimate submissions, runs the estimator and keeps
// each session's display state. A session only ever shows the result of its
// most recently accepted request.
type Orchestrator struct {
	estimator  pricing.Estimator
	store      SessionStore
	maxHistory int
	now        func() time.Time

	// OnTransition, when set, is called for every state change.
	OnTransition func(sessionID string, from, to State)
}

// New creates an Orchestrator. maxHistory bounds the recent quotes kept per
// session (0 = unlimited).
func New(estimator pricing.Estimator, store SessionStore, maxHistory int) *Orchestrator {
	return &Orchestrator{
		estimator:  estimator,
		store:      store,
		maxHistory: maxHistory,
		now:        time.Now,
	}
}

// Submit runs one form submission for sessionID. An empty sessionID starts a
// new session. It returns a *ValidationError for rejected input, an
// *EstimationFailure when the estimator fails, and ErrSuperseded when a newer
// request for the same session was accepted in the meantime.
func (o *Orchestrator) Submit(ctx context.Context, sessionID string, form Form) (Result, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	o.transition(sessionID, o.currentState(sessionID), StateValidating)
	qty, err := validateForm(&form)
	if err != nil {
		var verr *ValidationError
		errors.As(err, &verr)
		o.transition(sessionID, StateValidating, StateInvalid)
		resting := StateIdle
		o.store.Update(sessionID, func(d *Display) bool {
			d.LastOutcome = StateInvalid
			d.Reason = verr.Reason
			d.State = restingState(d)
			d.UpdatedAt = o.now()
			resting = d.State
			return true
		})
		o.transition(sessionID, StateInvalid, resting)
		return Result{SessionID: sessionID}, err
	}

	requestID := uuid.NewString()
	o.store.Update(sessionID, func(d *Display) bool {
		if d.PendingRequestID != "" {
			log.Printf("DEBUG: session %s: request %s supersedes %s", sessionID, requestID, d.PendingRequestID)
		}
		d.PendingRequestID = requestID
		d.State = StatePending
		d.Reason = ""
		d.UpdatedAt = o.now()
		return true
	})
	o.transition(sessionID, StateValidating, StatePending)

	quote, estErr := o.estimator.Estimate(ctx, form.CropType, form.Location, qty)
	if estErr == nil {
		quote.RequestID = requestID
	}

	applied := false
	o.store.Update(sessionID, func(d *Display) bool {
		if d.PendingRequestID != requestID {
			return false
		}
		applied = true
		d.PendingRequestID = ""
		d.State = StateIdle
		d.UpdatedAt = o.now()
		if estErr != nil {
			d.LastOutcome = StateFailed
			d.Reason = reasonEstimateFailed
			return true
		}
		q := quote
		d.LastOutcome = StateFulfilled
		d.Reason = ""
		d.Quote = &q
		d.Recent = append(d.Recent, quote)
		if o.maxHistory > 0 && len(d.Recent) > o.maxHistory {
			d.Recent = d.Recent[len(d.Recent)-o.maxHistory:]
		}
		return true
	})

	if !applied {
		log.Printf("INFO: session %s: discarding superseded request %s", sessionID, requestID)
		return Result{SessionID: sessionID, RequestID: requestID}, ErrSuperseded
	}

	if estErr != nil {
		log.Printf("ERROR: session %s: estimate failed for %s/%s: %v", sessionID, form.CropType, form.Location, estErr)
		o.transition(sessionID, StatePending, StateFailed)
		o.transition(sessionID, StateFailed, StateIdle)
		return Result{SessionID: sessionID, RequestID: requestID}, &EstimationFailure{Err: estErr}
	}

	o.transition(sessionID, StatePending, StateFulfilled)
	o.transition(sessionID, StateFulfilled, StateIdle)
	return Result{SessionID: sessionID, RequestID: requestID, Quote: quote}, nil
}

// Current returns the display state of a session.
func (o *Orchestrator) Current(sessionID string) (Display, error) {
	return o.store.Get(sessionID)
}

// currentState is the session's resting state, Idle for unknown sessions.
func (o *Orchestrator) currentState(sessionID string) State {
	d, err := o.store.Get(sessionID)
	if err != nil {
		return StateIdle
	}
	return d.State
}

func (o *Orchestrator) transition(sessionID string, from, to State) {
	if o.OnTransition != nil {
		o.OnTransition(sessionID, from, to)
	}
}

// restingState is Pending while a request is in flight, Idle otherwise.
func restingState(d *Display) State {
	if d.PendingRequestID != "" {
		return StatePending
	}
	return StateIdle
}
