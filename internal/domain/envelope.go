package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrNoEnvelope = errors.New("no response envelope")

// Envelope is a server response as received: status, headers and raw body.
// A nil *Envelope means the transport produced no usable response.
type Envelope struct {
	Status  int
	Headers http.Header
	Data    []byte
}

// Decode unmarshals the JSON body into v.
func (e *Envelope) Decode(v any) error {
	if e == nil {
		return ErrNoEnvelope
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("failed to decode response body (status %d): %w", e.Status, err)
	}
	return nil
}

func (e *Envelope) IsOK() bool {
	return e != nil && e.Status == http.StatusOK
}
