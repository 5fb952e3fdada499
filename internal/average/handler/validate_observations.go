package handler

import (
	"errors"
	"io"
	"net/http"
)

const maxPayloadBytes = 1 << 20

type ValidateObservationsResponse struct {
	Valid bool   `json:"valid" example:"false"`
	Error string `json:"error,omitempty" example:"missing properties: 'observations'"`
}

// ValidateObservations godoc
// @Summary Validate an observations payload
// @Description Check a Valet observations response body against the observations JSON Schema
// @Tags Observations
// @Accept json
// @Produce json
// @Param payload body object true "Observations response body"
// @Success 200 {object} ValidateObservationsResponse
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Router /observations/validate [post]
func (h *Handler) ValidateObservations(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPayloadBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(payload) == 0 {
		writeError(w, http.StatusBadRequest, "empty request body")
		return
	}

	res := ValidateObservationsResponse{Valid: true}
	if vErr := h.validator.ValidateErr(payload); vErr != nil {
		res = ValidateObservationsResponse{Valid: false, Error: vErr.Error()}
	}
	writeJSON(w, http.StatusOK, res)
}
