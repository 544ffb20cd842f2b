package pushclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joeydtaylor/filament/pkg/internal/adapter/pushclient"
	"github.com/joeydtaylor/filament/pkg/internal/compression"
	"github.com/joeydtaylor/filament/pkg/internal/sensor"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

func TestPushSendsBodyAndHeaders(t *testing.T) {
	var gotBody []byte
	var gotRepo, gotKey, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/commit" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotRepo = r.Header.Get("x-filament-repo")
		gotKey = r.Header.Get("x-api-key")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := pushclient.NewPushClient(
		pushclient.WithBaseURL(srv.URL),
		pushclient.WithAPIKey("secret"),
	)
	defer p.Close()

	body := []byte("TRACE{\"id\":\"t1\"}\nTRACE{\"id\":\"t2\"}")
	if err := p.Push(context.Background(), "repo-1", body); err != nil {
		t.Fatalf("Push() error: %v", err)
	}

	if string(gotBody) != string(body) {
		t.Fatalf("server received %q", gotBody)
	}
	if gotRepo != "repo-1" || gotKey != "secret" {
		t.Fatalf("headers: repo=%q key=%q", gotRepo, gotKey)
	}
	if gotContentType != "application/x-ndjson" {
		t.Fatalf("content type = %q", gotContentType)
	}
}

func TestPushCompressedBody(t *testing.T) {
	var gotEncoding string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEncoding = r.Header.Get("Content-Encoding")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := pushclient.NewPushClient(
		pushclient.WithBaseURL(srv.URL),
		pushclient.WithCompression(compression.COMPRESS_ZSTD),
	)
	defer p.Close()

	body := []byte("SESSION{\"id\":\"s1\",\"action\":\"create\"}")
	if err := p.Push(context.Background(), "repo-1", body); err != nil {
		t.Fatalf("Push() error: %v", err)
	}

	if gotEncoding != "zstd" {
		t.Fatalf("Content-Encoding = %q, want zstd", gotEncoding)
	}
	restored, err := compression.Decompress(gotBody, compression.COMPRESS_ZSTD)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if string(restored) != string(body) {
		t.Fatalf("round trip mismatch: %q", restored)
	}
}

func TestPushNon2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	failures := 0
	s := sensor.NewSensor()
	s.RegisterOnPushFailure(func(types.ComponentMetadata, error) { failures++ })

	p := pushclient.NewPushClient(
		pushclient.WithBaseURL(srv.URL),
		pushclient.WithSensor(s),
	)
	defer p.Close()

	if err := p.Push(context.Background(), "repo-1", []byte("x")); err == nil {
		t.Fatalf("expected error for 503 response")
	}
	if failures != 1 {
		t.Fatalf("sensor observed %d failures, want 1", failures)
	}
}

func TestPushRequiresConfiguration(t *testing.T) {
	p := pushclient.NewPushClient()
	if err := p.Push(context.Background(), "repo-1", []byte("x")); err == nil {
		t.Fatalf("expected error with no base URL")
	}

	p2 := pushclient.NewPushClient(pushclient.WithBaseURL("http://localhost:1"))
	if err := p2.Push(context.Background(), "", []byte("x")); err == nil {
		t.Fatalf("expected error with empty repository")
	}
}
