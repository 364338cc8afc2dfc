package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountByEmail_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), "jo@example.com")
		w.Write([]byte(`{"items": [{"login": "jodoe"}]}`))
	}))
	defer srv.Close()

	l := NewLookupWithEndpoint(srv.URL)
	assert.Equal(t, "jodoe", l.AccountByEmail(context.Background(), "jo@example.com"))
}

func TestAccountByEmail_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	l := NewLookupWithEndpoint(srv.URL)
	assert.Empty(t, l.AccountByEmail(context.Background(), "nobody@example.com"))
}

func TestAccountByEmail_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	l := NewLookupWithEndpoint(srv.URL)
	assert.Empty(t, l.AccountByEmail(context.Background(), "jo@example.com"))
}

func TestAccountByEmail_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	l := NewLookupWithEndpoint(srv.URL)
	assert.Empty(t, l.AccountByEmail(context.Background(), "jo@example.com"))
}

func TestAccountByEmail_EmptyEmail(t *testing.T) {
	l := NewLookup()
	assert.Empty(t, l.AccountByEmail(context.Background(), ""))
}
