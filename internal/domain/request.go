package domain

import "net/http"

type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// RequestDescriptor is the outcome of a builder: everything needed to send one request.
// URL is absolute and already carries the encoded query string.
type RequestDescriptor struct {
	Method  Method
	URL     string
	Headers map[string]string
	Body    []byte
}
