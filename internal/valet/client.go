// Package valet queries the Bank of Canada Valet observations endpoint:
//
//	/valet/observations/{seriesNames}/{format}
//
// Every request goes through an adapters.Dispatcher, so the caller receives the raw
// envelope and decides what a non-200 status means.
package valet

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"valet/internal/adapters"
	"valet/internal/domain"
	"valet/internal/request"
)

const (
	DefaultBaseURL = "https://www.bankofcanada.ca"
	FormatJSON     = "json"

	observationsPath = "/valet/observations/"
)

var ErrNoSeries = errors.New("at least one series name is required")

// Param is an arbitrary query parameter appended after the typed options.
type Param struct {
	Key   string
	Value any
}

// Query describes an observations request. Zero values are left out of the query string.
type Query struct {
	Series []string
	// Format defaults to json.
	Format string

	StartDate    string
	EndDate      string
	Recent       int
	RecentWeeks  int
	RecentMonths int
	RecentYears  int
	OrderDir     string

	// Raw parameters are sent verbatim, e.g. to probe how the API rejects bad values.
	Raw []Param
}

type Client struct {
	dispatcher adapters.Dispatcher
	builder    request.Builder
}

// Request builds the descriptor for q without sending it.
func (c *Client) Request(q Query) (domain.RequestDescriptor, error) {
	if len(q.Series) == 0 {
		return domain.RequestDescriptor{}, ErrNoSeries
	}
	format := q.Format
	if format == "" {
		format = FormatJSON
	}

	escaped := make([]string, len(q.Series))
	for i, name := range q.Series {
		escaped[i] = url.PathEscape(name)
	}
	b := c.builder.WithEndpoint(observationsPath + strings.Join(escaped, ",") + "/" + url.PathEscape(format))
	if q.StartDate != "" {
		b = b.WithParam("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		b = b.WithParam("end_date", q.EndDate)
	}
	if q.Recent != 0 {
		b = b.WithParam("recent", q.Recent)
	}
	if q.RecentWeeks != 0 {
		b = b.WithParam("recent_weeks", q.RecentWeeks)
	}
	if q.RecentMonths != 0 {
		b = b.WithParam("recent_months", q.RecentMonths)
	}
	if q.RecentYears != 0 {
		b = b.WithParam("recent_years", q.RecentYears)
	}
	if q.OrderDir != "" {
		b = b.WithParam("order_dir", q.OrderDir)
	}
	for _, p := range q.Raw {
		b = b.WithParam(p.Key, p.Value)
	}

	req, err := b.Build()
	if err != nil {
		return domain.RequestDescriptor{}, fmt.Errorf("failed to build observations request: %w", err)
	}
	return req, nil
}

// Observations sends q. The error is only set when the request could not be built;
// a nil envelope with a nil error means no response was received.
func (c *Client) Observations(ctx context.Context, q Query) (*domain.Envelope, error) {
	req, err := c.Request(q)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Dispatch(ctx, req), nil
}

func DecodeObservations(env *domain.Envelope) (domain.ObservationsPayload, error) {
	var payload domain.ObservationsPayload
	if err := env.Decode(&payload); err != nil {
		return domain.ObservationsPayload{}, err
	}
	return payload, nil
}

func DecodeError(env *domain.Envelope) (domain.ErrorPayload, error) {
	var payload domain.ErrorPayload
	if err := env.Decode(&payload); err != nil {
		return domain.ErrorPayload{}, err
	}
	return payload, nil
}

func NewClient(dispatcher adapters.Dispatcher, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		dispatcher: dispatcher,
		builder: request.New().
			WithBaseURL(strings.TrimSuffix(baseURL, "/")).
			WithMethod(domain.MethodGet).
			WithHeader("Accept", "application/json"),
	}
}
