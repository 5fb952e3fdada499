package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

const dateKey = "d"

type SeriesValue struct {
	V string `json:"v"`
}

// Observation is one dated point. Every key of the JSON object other than "d" is a series name.
type Observation struct {
	Date   string
	Values map[string]SeriesValue
}

func (o *Observation) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Values = make(map[string]SeriesValue, len(raw))
	for key, msg := range raw {
		if key == dateKey {
			if err := json.Unmarshal(msg, &o.Date); err != nil {
				return fmt.Errorf("observation date: %w", err)
			}
			continue
		}
		var v SeriesValue
		if err := json.Unmarshal(msg, &v); err != nil {
			return fmt.Errorf("observation %q: %w", key, err)
		}
		o.Values[key] = v
	}
	return nil
}

func (o Observation) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(o.Values)+1)
	for k, v := range o.Values {
		out[k] = v
	}
	out[dateKey] = o.Date
	return json.Marshal(out)
}

type SeriesDetail struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ObservationsPayload struct {
	Terms        map[string]string       `json:"terms,omitempty"`
	SeriesDetail map[string]SeriesDetail `json:"seriesDetail"`
	Observations []Observation           `json:"observations"`
}

// ErrorPayload is the body Valet returns alongside 4xx statuses.
type ErrorPayload struct {
	Message string `json:"message"`
	Docs    string `json:"docs,omitempty"`
}

// SeriesName returns the Valet identifier of the exchange-rate series from -> to, e.g. FXUSDCAD.
func SeriesName(from, to string) string {
	return "FX" + strings.ToUpper(from) + strings.ToUpper(to)
}
