package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"valet/internal/average"

	"github.com/sirupsen/logrus"
)

type AverageService interface {
	Get(ctx context.Context, weeks int, from, to string) (average.View, error)
	DefaultWeeks() int
}

type PayloadValidator interface {
	ValidateErr(payload []byte) error
}

type Handler struct {
	service   AverageService
	validator PayloadValidator
	logger    logrus.FieldLogger
}

func NewAverageHandler(service AverageService, validator PayloadValidator, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{service: service, validator: validator, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
