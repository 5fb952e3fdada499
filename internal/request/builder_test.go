package request

import (
	"testing"

	"valet/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestBuilder_Build_PreservesParamOrder(t *testing.T) {
	req, err := New().
		WithBaseURL("https://example.com").
		WithEndpoint("/v1/x").
		WithParam("a", 1).
		WithParam("b", 2).
		Build()

	require.NoError(t, err)
	require.Equal(t, "https://example.com/v1/x?a=1&b=2", req.URL)
	require.Equal(t, domain.MethodGet, req.Method)
	require.Empty(t, req.Headers)
	require.Nil(t, req.Body)
}

func TestBuilder_WithParam_OverwriteKeepsPosition(t *testing.T) {
	req, err := New().
		WithBaseURL("https://example.com").
		WithEndpoint("/v1/x").
		WithParam("a", 1).
		WithParam("b", 2).
		WithParam("a", "z").
		Build()

	require.NoError(t, err)
	require.Equal(t, "https://example.com/v1/x?a=z&b=2", req.URL)
}

func TestBuilder_Build_EncodesValues(t *testing.T) {
	req, err := New().
		WithBaseURL("https://example.com").
		WithEndpoint("/search").
		WithParam("q", "a b&c").
		WithParam("recent", -1).
		Build()

	require.NoError(t, err)
	require.Equal(t, "https://example.com/search?q=a+b%26c&recent=-1", req.URL)
}

func TestBuilder_Build_KeepsEndpointQueryWithoutParams(t *testing.T) {
	req, err := New().
		WithBaseURL("https://www.bankofcanada.ca").
		WithEndpoint("/valet/observations/FXUSDCAD/json?recent_weeks=10").
		Build()

	require.NoError(t, err)
	require.Equal(t, "https://www.bankofcanada.ca/valet/observations/FXUSDCAD/json?recent_weeks=10", req.URL)
}

func TestBuilder_Build_ParamsReplaceEndpointQuery(t *testing.T) {
	req, err := New().
		WithBaseURL("https://example.com").
		WithEndpoint("/v1/x?old=1").
		WithParam("new", 2).
		Build()

	require.NoError(t, err)
	require.Equal(t, "https://example.com/v1/x?new=2", req.URL)
}

func TestBuilder_Build_MethodHeadersBody(t *testing.T) {
	req, err := New().
		WithBaseURL("https://example.com/api/").
		WithMethod(domain.MethodPost).
		WithEndpoint("items").
		WithHeader("Content-Type", "application/json").
		WithHeaders(map[string]string{"X-Trace": "1"}).
		WithBody([]byte(`{"k":"v"}`)).
		Build()

	require.NoError(t, err)
	require.Equal(t, domain.MethodPost, req.Method)
	require.Equal(t, "https://example.com/api/items", req.URL)
	require.Equal(t, map[string]string{"Content-Type": "application/json", "X-Trace": "1"}, req.Headers)
	require.Equal(t, []byte(`{"k":"v"}`), req.Body)
}

func TestBuilder_IsImmutable(t *testing.T) {
	base := New().WithBaseURL("https://example.com").WithEndpoint("/v1/x").WithParam("a", 1).WithHeader("h", "1")

	derived := base.WithParam("b", 2).WithParam("a", 9).WithHeader("h", "2")

	baseReq, err := base.Build()
	require.NoError(t, err)
	derivedReq, err := derived.Build()
	require.NoError(t, err)

	require.Equal(t, "https://example.com/v1/x?a=1", baseReq.URL)
	require.Equal(t, "1", baseReq.Headers["h"])
	require.Equal(t, "https://example.com/v1/x?a=9&b=2", derivedReq.URL)
	require.Equal(t, "2", derivedReq.Headers["h"])
}

func TestBuilder_Build_ReturnsFreshDescriptor(t *testing.T) {
	b := New().WithBaseURL("https://example.com").WithHeader("h", "1").WithBody([]byte("x"))

	first, err := b.Build()
	require.NoError(t, err)
	first.Headers["h"] = "mutated"
	first.Body[0] = 'y'

	second, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "1", second.Headers["h"])
	require.Equal(t, []byte("x"), second.Body)
}

func TestBuilder_Build_BaseURLErrors(t *testing.T) {
	_, err := New().WithBaseURL("http://::1]").WithEndpoint("/x").Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse base URL")

	_, err = New().WithEndpoint("/x").Build()
	require.ErrorIs(t, err, ErrBaseNotAbsolute)
}
