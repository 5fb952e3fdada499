package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"valet/internal/average"
	"valet/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetAverageResponse struct {
	From    string  `json:"from" example:"USD"`
	To      string  `json:"to" example:"CAD"`
	Series  string  `json:"series" example:"FXUSDCAD"`
	Weeks   int     `json:"weeks" example:"10"`
	Average float64 `json:"average" example:"1.3712"`
}

// GetAverage godoc
// @Summary Average conversion rate
// @Description Average daily conversion rate of a currency pair over the most recent weeks, computed from Valet observations
// @Tags Averages
// @Produce json
// @Param from path string true "Source currency code" example(USD)
// @Param to path string true "Target currency code" example(CAD)
// @Param weeks query int false "Window in weeks, defaults to the configured value"
// @Success 200 {object} GetAverageResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "no observations in the window"
// @Failure 500 {object} errorResponse
// @Failure 502 {object} errorResponse "Valet call failed"
// @Router /averages/{from}/{to} [get]
func (h *Handler) GetAverage(w http.ResponseWriter, r *http.Request) {
	from := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "from")))
	to := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "to")))

	weeks := h.service.DefaultWeeks()
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "weeks must be an integer")
			return
		}
		weeks = n
	}

	view, err := h.service.Get(r.Context(), weeks, from, to)
	if err != nil {
		var invalid *average.InvalidInputError
		var upstream *average.UpstreamError
		switch {
		case errors.As(err, &invalid):
			writeError(w, http.StatusBadRequest, invalid.Reason.Error())
		case errors.Is(err, domain.ErrNoObservations):
			writeError(w, http.StatusNotFound, "no observations for the requested window")
		case errors.As(err, &upstream):
			h.logger.WithError(err).WithFields(logrus.Fields{"handler": "GetAverage", "series": upstream.Series, "status": upstream.Status}).Warn("Valet call failed")
			writeError(w, http.StatusBadGateway, upstream.Error())
		default:
			msg := "ups, couldn't compute the average this time"
			h.logger.WithError(err).WithFields(logrus.Fields{"handler": "GetAverage", "from": from, "to": to, "weeks": weeks}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, GetAverageResponse{
		From:    view.From,
		To:      view.To,
		Series:  view.Series,
		Weeks:   view.Weeks,
		Average: view.Average,
	})
}
