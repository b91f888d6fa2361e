package orchestrator

import "errors"

const (
	reasonMissingFields   = "Please fill in all fields"
	reasonInvalidQuantity = "Please enter a valid quantity"
	reasonEstimateFailed  = "Failed to predict price. Please try again."
)

// ErrSuperseded is returned when a newer submission for the same session was
// accepted while this one was pending. Its result is discarded.
var ErrSuperseded = errors.New("estimate superseded by a newer request")

// ValidationError reports user input that was rejected before estimation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// EstimationFailure wraps an estimator error. Its message is the generic
// retry prompt; the cause is available through errors.Unwrap.
type EstimationFailure struct {
	Err error
}

func (e *EstimationFailure) Error() string {
	return reasonEstimateFailed
}

func (e *EstimationFailure) Unwrap() error {
	return e.Err
}
