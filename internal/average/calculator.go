package average

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"valet/internal/domain"
	"valet/internal/platform/metrics"
	"valet/internal/valet"

	"github.com/sirupsen/logrus"
)

type ObservationsClient interface {
	Observations(ctx context.Context, q valet.Query) (*domain.Envelope, error)
}

// Calculator averages the daily conversion rate of a currency pair over the most recent weeks.
type Calculator struct {
	client ObservationsClient
	logger logrus.FieldLogger
}

// Average returns the mean of the observed rates. Errors are typed:
// *InvalidInputError for rejected arguments, *UpstreamError for a non-200 or missing
// response, domain.ErrNoObservations when the series has no data in the window.
func (c *Calculator) Average(ctx context.Context, weeks int, from, to string) (float64, error) {
	avg, err := c.average(ctx, weeks, from, to)
	metrics.AverageComputationsTotal.WithLabelValues(resultLabel(err)).Inc()
	return avg, err
}

func (c *Calculator) average(ctx context.Context, weeks int, from, to string) (float64, error) {
	if err := ValidateInput(weeks, from, to); err != nil {
		return 0, err
	}

	series := domain.SeriesName(from, to)
	env, err := c.client.Observations(ctx, valet.Query{Series: []string{series}, RecentWeeks: weeks})
	if err != nil {
		return 0, fmt.Errorf("failed to request observations for %s: %w", series, err)
	}
	if !env.IsOK() {
		return 0, newUpstreamError(series, env)
	}

	payload, err := valet.DecodeObservations(env)
	if err != nil {
		return 0, fmt.Errorf("failed to decode observations for %s: %w", series, err)
	}

	values := make([]string, 0, len(payload.Observations))
	for _, obs := range payload.Observations {
		if v, ok := obs.Values[series]; ok {
			values = append(values, v.V)
		}
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("%w for %s over %d weeks", domain.ErrNoObservations, series, weeks)
	}

	var sum float64
	for _, v := range values {
		rate, parseErr := strconv.ParseFloat(v, 64)
		if parseErr != nil {
			return 0, fmt.Errorf("failed to parse rate %q of %s: %w", v, series, parseErr)
		}
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
			return 0, fmt.Errorf("failed to parse rate %q of %s: %w", v, series, ErrRateOutOfRange)
		}
		sum += rate
	}

	avg := sum / float64(len(values))
	c.logger.WithFields(logrus.Fields{"series": series, "weeks": weeks, "count": len(values)}).Debugf("Average conversion rate %f", avg)
	return avg, nil
}

// AverageOrZero never fails: any error is logged and reported as 0.
// Callers that need to tell a missing average from a zero one should use Average.
func (c *Calculator) AverageOrZero(ctx context.Context, weeks int, from, to string) float64 {
	avg, err := c.Average(ctx, weeks, from, to)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{"weeks": weeks, "from": from, "to": to}).Error("Average conversion rate not computed")
		return 0
	}
	return avg
}

func newUpstreamError(series string, env *domain.Envelope) *UpstreamError {
	if env == nil {
		return &UpstreamError{Series: series}
	}
	upstream := &UpstreamError{Series: series, Status: env.Status}
	if payload, err := valet.DecodeError(env); err == nil {
		upstream.Message = payload.Message
	}
	return upstream
}

func resultLabel(err error) string {
	var invalid *InvalidInputError
	var upstream *UpstreamError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &invalid):
		return "invalid_input"
	case errors.As(err, &upstream):
		return "upstream_error"
	case errors.Is(err, domain.ErrNoObservations):
		return "no_data"
	default:
		return "decode_error"
	}
}

// IsUpstreamStatus reports whether err is an UpstreamError carrying the given status.
func IsUpstreamStatus(err error, status int) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream) && upstream.Status == status
}

func NewCalculator(client ObservationsClient, logger logrus.FieldLogger) *Calculator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Calculator{client: client, logger: logger}
}
