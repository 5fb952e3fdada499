// Package request assembles RequestDescriptors step by step.
//
// Builder is a value type: every With* method returns a new Builder and leaves
// the receiver untouched, so a partially configured builder can be shared and
// extended from several goroutines.
package request

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"valet/internal/domain"
)

var ErrBaseNotAbsolute = errors.New("base URL must be absolute")

type param struct {
	key   string
	value string
}

type Builder struct {
	method   domain.Method
	baseURL  string
	endpoint string
	params   []param
	headers  map[string]string
	body     []byte
}

func New() Builder {
	return Builder{method: domain.MethodGet}
}

func (b Builder) WithBaseURL(baseURL string) Builder {
	b.baseURL = baseURL
	return b
}

func (b Builder) WithMethod(method domain.Method) Builder {
	b.method = method
	return b
}

// WithEndpoint sets the path, resolved against the base URL on Build.
func (b Builder) WithEndpoint(endpoint string) Builder {
	b.endpoint = endpoint
	return b
}

// WithParam adds a query parameter. Setting an existing key replaces its value
// but keeps the position of the first insertion.
func (b Builder) WithParam(key string, value any) Builder {
	v := fmt.Sprint(value)
	params := slices.Clone(b.params)
	for i := range params {
		if params[i].key == key {
			params[i].value = v
			b.params = params
			return b
		}
	}
	b.params = append(params, param{key: key, value: v})
	return b
}

func (b Builder) WithHeader(key, value string) Builder {
	headers := make(map[string]string, len(b.headers)+1)
	maps.Copy(headers, b.headers)
	headers[key] = value
	b.headers = headers
	return b
}

func (b Builder) WithHeaders(h map[string]string) Builder {
	headers := make(map[string]string, len(b.headers)+len(h))
	maps.Copy(headers, b.headers)
	maps.Copy(headers, h)
	b.headers = headers
	return b
}

func (b Builder) WithBody(body []byte) Builder {
	b.body = bytes.Clone(body)
	return b
}

// Build resolves the endpoint against the base URL and encodes the parameters
// in insertion order. Each call returns a fresh descriptor.
func (b Builder) Build() (domain.RequestDescriptor, error) {
	base, err := url.Parse(b.baseURL)
	if err != nil {
		return domain.RequestDescriptor{}, fmt.Errorf("failed to parse base URL: %w", err)
	}
	if !base.IsAbs() {
		return domain.RequestDescriptor{}, fmt.Errorf("%w: %q", ErrBaseNotAbsolute, b.baseURL)
	}

	ref, err := url.Parse(b.endpoint)
	if err != nil {
		return domain.RequestDescriptor{}, fmt.Errorf("failed to parse endpoint %q: %w", b.endpoint, err)
	}

	u := base.ResolveReference(ref)
	if len(b.params) > 0 {
		u.RawQuery = b.encodeParams()
	}

	headers := maps.Clone(b.headers)
	if headers == nil {
		headers = map[string]string{}
	}

	return domain.RequestDescriptor{
		Method:  b.method,
		URL:     u.String(),
		Headers: headers,
		Body:    bytes.Clone(b.body),
	}, nil
}

func (b Builder) encodeParams() string {
	var sb strings.Builder
	for i, p := range b.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}
