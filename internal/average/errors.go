package average

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrWindowNotPositive = errors.New("weeks must be a positive number")
	ErrSameCodes         = errors.New("currencyFrom and currencyTo must be distinct")
	ErrCodeLength        = errors.New("currencyFrom and currencyTo must be 3 characters long")
	ErrRateOutOfRange    = errors.New("rate must be a finite non-negative number")
)

// InvalidInputError reports arguments rejected before any request is made.
type InvalidInputError struct {
	Reason error
	Weeks  int
	From   string
	To     string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input (weeks=%d, from=%q, to=%q): %v", e.Weeks, e.From, e.To, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return e.Reason }

// UpstreamError reports a Valet response other than 200. Status is 0 when no response was received.
type UpstreamError struct {
	Series  string
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("API call for %s failed: no response", e.Series)
	}
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("API call for %s failed, status code: %d: %s", e.Series, e.Status, msg)
}
