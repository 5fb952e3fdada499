package domain

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObservation_UnmarshalJSON(t *testing.T) {
	var obs Observation
	err := json.Unmarshal([]byte(`{"d": "2025-01-02", "FXUSDCAD": {"v": "1.4379"}, "FXEURCAD": {"v": "1.4801"}}`), &obs)

	require.NoError(t, err)
	require.Equal(t, "2025-01-02", obs.Date)
	require.Equal(t, map[string]SeriesValue{
		"FXUSDCAD": {V: "1.4379"},
		"FXEURCAD": {V: "1.4801"},
	}, obs.Values)
}

func TestObservation_UnmarshalJSON_Errors(t *testing.T) {
	var obs Observation
	require.ErrorContains(t, json.Unmarshal([]byte(`{"d": 20250102}`), &obs), "observation date")
	require.ErrorContains(t, json.Unmarshal([]byte(`{"d": "2025-01-02", "FXUSDCAD": "1.43"}`), &obs), `observation "FXUSDCAD"`)
	require.Error(t, json.Unmarshal([]byte(`[]`), &obs))
}

func TestObservation_MarshalJSON(t *testing.T) {
	obs := Observation{Date: "2025-01-02", Values: map[string]SeriesValue{"FXUSDCAD": {V: "1.4379"}}}

	data, err := json.Marshal(obs)

	require.NoError(t, err)
	require.JSONEq(t, `{"d": "2025-01-02", "FXUSDCAD": {"v": "1.4379"}}`, string(data))
}

func TestObservationsPayload_Decode(t *testing.T) {
	body := `{
		"terms": {"url": "https://www.bankofcanada.ca/terms/"},
		"seriesDetail": {"FXUSDCAD": {"label": "USD/CAD", "description": "US dollar to Canadian dollar daily exchange rate"}},
		"observations": [{"d": "2025-01-02", "FXUSDCAD": {"v": "1.4379"}}, {"d": "2025-01-03"}]
	}`
	env := &Envelope{Status: http.StatusOK, Data: []byte(body)}

	var payload ObservationsPayload
	require.NoError(t, env.Decode(&payload))

	require.Equal(t, "USD/CAD", payload.SeriesDetail["FXUSDCAD"].Label)
	require.Len(t, payload.Observations, 2)
	require.Empty(t, payload.Observations[1].Values)
}

func TestEnvelope(t *testing.T) {
	var nilEnv *Envelope
	require.False(t, nilEnv.IsOK())
	require.ErrorIs(t, nilEnv.Decode(&ErrorPayload{}), ErrNoEnvelope)

	env := &Envelope{Status: http.StatusBadRequest, Data: []byte("not json")}
	require.False(t, env.IsOK())
	require.ErrorContains(t, env.Decode(&ErrorPayload{}), "failed to decode response body (status 400)")

	require.True(t, (&Envelope{Status: http.StatusOK}).IsOK())
}

func TestSeriesName(t *testing.T) {
	require.Equal(t, "FXUSDCAD", SeriesName("usd", "Cad"))
}

func TestAverageKey(t *testing.T) {
	key := AverageKey{From: "usd", To: "cad", Weeks: 10}

	require.Equal(t, "FXUSDCAD", key.Series())
	require.Equal(t, "USD/CAD:10", key.String())
}
