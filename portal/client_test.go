package portal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientInjectsBearerToken(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenStore(NewMemoryTokenStore("tok-123")))
	require.NoError(t, c.get(context.Background(), "/x", nil, &struct{}{}))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClientUnauthenticatedWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.get(context.Background(), "/x", nil, &struct{}{}))
	assert.Empty(t, gotAuth)
}

func TestClientDecodesStructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"duplicate key","code":11000,"field":"email"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.get(context.Background(), "/x", nil, nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, 11000, apiErr.Code)
	assert.Equal(t, "email", apiErr.Field)
	assert.Equal(t, "duplicate key", apiErr.Message)
}

func TestClientErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.get(context.Background(), "/x", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "request failed with status 502", err.Error())
}

func TestFileTokenStore(t *testing.T) {
	s := FileTokenStore{Path: t.TempDir() + "/token"}
	assert.Empty(t, s.Token())

	require.NoError(t, s.Save("abc"))
	assert.Equal(t, "abc", s.Token())

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	require.NoError(t, s.Clear()) // idempotent
}
