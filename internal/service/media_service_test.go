package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"postdeck/internal/transfer"
)

// pngBytes carries a valid PNG signature so the sniffer recognizes it.
var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)

func TestUploadRejectsUnknownFileTypeWithoutNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	s := NewMediaService(testClient(t, srv.URL))
	_, err := s.Upload(context.Background(), &transfer.UploadFile{
		Name: "notes.txt",
		Data: []byte("plain text, not media"),
	})
	require.Error(t, err)
	require.Zero(t, hits.Load())
}

func TestUploadSendsFileAndIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "proj-1", r.FormValue("projectId"))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		require.NotEmpty(t, header.Filename)
		w.Write([]byte(`{"path":"uploads/x.png"}`))
	}))
	defer srv.Close()

	s := NewMediaService(testClient(t, srv.URL))
	resp, err := s.Upload(context.Background(), &transfer.UploadFile{
		Name:      "x.png",
		Data:      pngBytes,
		ProjectID: "proj-1",
	})
	require.NoError(t, err)
	require.Equal(t, "uploads/x.png", resp.Location())
}

func TestUploadMissingReferenceIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s := NewMediaService(testClient(t, srv.URL))
	_, err := s.Upload(context.Background(), &transfer.UploadFile{Name: "x.png", Data: pngBytes})
	require.Error(t, err)
}
