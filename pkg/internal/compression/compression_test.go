package compression_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joeydtaylor/filament/pkg/internal/compression"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

func TestRoundTripAllAlgorithms(t *testing.T) {
	payload := []byte(strings.Repeat(`TRACE{"id":"t1","action":"create","data":{"k":"v"}}`+"\n", 200))

	algorithms := []struct {
		name string
		alg  types.CompressionAlgorithm
	}{
		{"none", compression.COMPRESS_NONE},
		{"gzip", compression.COMPRESS_GZIP},
		{"snappy", compression.COMPRESS_SNAPPY},
		{"zstd", compression.COMPRESS_ZSTD},
		{"brotli", compression.COMPRESS_BROTLI},
		{"lz4", compression.COMPRESS_LZ4},
	}

	for _, tc := range algorithms {
		t.Run(tc.name, func(t *testing.T) {
			compressed, err := compression.Compress(payload, tc.alg)
			if err != nil {
				t.Fatalf("Compress() error: %v", err)
			}
			restored, err := compression.Decompress(compressed, tc.alg)
			if err != nil {
				t.Fatalf("Decompress() error: %v", err)
			}
			if !bytes.Equal(restored, payload) {
				t.Fatalf("round trip mismatch for %s", tc.name)
			}
			if tc.alg != compression.COMPRESS_NONE && len(compressed) >= len(payload) {
				t.Fatalf("%s did not shrink repetitive payload: %d >= %d", tc.name, len(compressed), len(payload))
			}
		})
	}
}

func TestEncodingTokens(t *testing.T) {
	if got := compression.EncodingToken(compression.COMPRESS_NONE); got != "" {
		t.Fatalf("none token = %q", got)
	}
	if got := compression.EncodingToken(compression.COMPRESS_BROTLI); got != "br" {
		t.Fatalf("brotli token = %q", got)
	}
	if got := compression.EncodingToken(compression.COMPRESS_GZIP); got != "gzip" {
		t.Fatalf("gzip token = %q", got)
	}
}

func TestUnknownAlgorithmRejected(t *testing.T) {
	if _, err := compression.Compress([]byte("x"), types.CompressionAlgorithm(99)); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
}
