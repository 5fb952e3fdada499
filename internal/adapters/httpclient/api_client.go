package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
	"valet/internal/domain"
	"valet/internal/platform/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultTimeout = 10 * time.Second

// Outcomes of a dispatch, used for logs and metrics only.
const (
	outcomeOK             = "ok"
	outcomeServerError    = "server_error"
	outcomeNoResponse     = "no_response"
	outcomeRequestNotSent = "request_not_sent"
	outcomeUndefined      = "undefined_response"
)

type APIClient struct {
	http   *http.Client
	logger logrus.FieldLogger
}

// Dispatch sends the request and returns the server response as is, whatever its status.
// It never returns an error: when there is no usable response the result is nil and the
// reason is logged.
func (c *APIClient) Dispatch(ctx context.Context, req domain.RequestDescriptor) *domain.Envelope {
	start := time.Now()
	method := string(req.Method)
	if method == "" {
		method = http.MethodGet
	}
	log := c.logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"method":     method,
		"url":        req.URL,
	})

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		log.WithError(err).Error("Request could not be sent")
		observe(method, outcomeRequestNotSent, start)
		return nil
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.WithError(err).Warn("Request was sent but no response received")
		observe(method, outcomeNoResponse, start)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == 0 {
		log.Error("Undefined response")
		observe(method, outcomeUndefined, start)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		// the status line and headers arrived, so the response is still handed back
		log.WithError(err).WithField("status", resp.StatusCode).Warn("Failed to read response body")
	}

	env := &domain.Envelope{
		Status:  resp.StatusCode,
		Headers: resp.Header,
		Data:    data,
	}

	if resp.StatusCode >= http.StatusBadRequest {
		log.WithField("status", resp.StatusCode).Warn("Server responded with error status")
		observe(method, outcomeServerError, start)
		return env
	}

	log.WithField("status", resp.StatusCode).Debug("Request completed")
	observe(method, outcomeOK, start)
	return env
}

func (c *APIClient) Get(ctx context.Context, url string, headers map[string]string) *domain.Envelope {
	return c.Dispatch(ctx, domain.RequestDescriptor{Method: domain.MethodGet, URL: url, Headers: headers})
}

func (c *APIClient) Post(ctx context.Context, url string, body []byte, headers map[string]string) *domain.Envelope {
	return c.Dispatch(ctx, domain.RequestDescriptor{Method: domain.MethodPost, URL: url, Headers: headers, Body: body})
}

func (c *APIClient) Put(ctx context.Context, url string, body []byte, headers map[string]string) *domain.Envelope {
	return c.Dispatch(ctx, domain.RequestDescriptor{Method: domain.MethodPut, URL: url, Headers: headers, Body: body})
}

func (c *APIClient) Delete(ctx context.Context, url string, headers map[string]string) *domain.Envelope {
	return c.Dispatch(ctx, domain.RequestDescriptor{Method: domain.MethodDelete, URL: url, Headers: headers})
}

func observe(method, outcome string, start time.Time) {
	label := methodLabel(method)
	metrics.ClientRequestsTotal.WithLabelValues(label, outcome).Inc()
	metrics.ClientRequestDurationSeconds.WithLabelValues(label, outcome).Observe(time.Since(start).Seconds())
}

// methodLabel bounds the method label cardinality to the known methods.
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		return method
	default:
		return "other"
	}
}

func NewAPIClient(httpClient *http.Client, logger logrus.FieldLogger) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &APIClient{http: httpClient, logger: logger}
}
