package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, &staticTokens{token: "tok-123"})
	var out map[string]bool
	err := c.Do(context.Background(), http.MethodGet, "projects", nil, true, &out)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.True(t, out["ok"])
}

func TestDoUnauthenticatedShortCircuits(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, &staticTokens{})
	err := c.Do(context.Background(), http.MethodGet, "projects", nil, true, nil)
	require.Error(t, err)
	require.Equal(t, KindUnauthenticated, KindOf(err))
	require.Zero(t, hits.Load(), "no network round-trip expected")
}

func TestDoServerErrorCarriesMessageAndCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"content too long","code":"post_too_long"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, &staticTokens{token: "tok"})
	err := c.Do(context.Background(), http.MethodPost, "posts", map[string]string{"content": "x"}, true, nil)
	require.Error(t, err)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, KindServerError, ae.Kind)
	require.Equal(t, "content too long", ae.Message)
	require.Equal(t, "post_too_long", ae.Code)
}

func TestDoServerErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, &staticTokens{token: "tok"})
	err := c.Do(context.Background(), http.MethodGet, "posts", nil, true, nil)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	require.Equal(t, KindServerError, ae.Kind)
	require.Equal(t, http.StatusText(http.StatusBadGateway), ae.Message)
}

func TestDoNetworkFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1/", "http://127.0.0.1:1/", &staticTokens{token: "tok"})
	err := c.Do(context.Background(), http.MethodGet, "projects", nil, true, nil)
	require.Error(t, err)
	require.Equal(t, KindNetworkFailure, KindOf(err))
}

func TestDoMalformedBodyIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, &staticTokens{token: "tok"})
	var out map[string]any
	err := c.Do(context.Background(), http.MethodGet, "projects", nil, true, &out)
	require.Equal(t, KindServerError, KindOf(err))
}

func TestUploadSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "post-9", r.FormValue("postId"))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		require.Equal(t, "pic.png", header.Filename)
		w.Write([]byte(`{"path":"uploads/pic.png"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, &staticTokens{token: "tok"})
	var out struct {
		Path string `json:"path"`
	}
	err := c.Upload(context.Background(), "posts/upload", "file", "pic.png",
		[]byte("not-a-real-png"), map[string]string{"postId": "post-9", "projectId": ""}, &out)
	require.NoError(t, err)
	require.Equal(t, "uploads/pic.png", out.Path)
}

func TestFileURLResolution(t *testing.T) {
	c := NewClient("http://api.local/api/v1", "http://api.local", &staticTokens{})
	require.Equal(t, "http://api.local/uploads/a.png", c.FileURL("/uploads/a.png"))
	require.Equal(t, "http://api.local/uploads/a.png", c.FileURL("uploads/a.png"))
	require.Equal(t, "https://cdn.example/a.png", c.FileURL("https://cdn.example/a.png"))
}
