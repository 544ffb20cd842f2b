// Package compression provides the push-body codecs. The algorithm set
// mirrors what the collection service accepts; the engine picks one at
// configuration time and the push client advertises it via Content-Encoding.
package compression

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

const (
	COMPRESS_NONE   types.CompressionAlgorithm = 0
	COMPRESS_GZIP   types.CompressionAlgorithm = 1
	COMPRESS_SNAPPY types.CompressionAlgorithm = 2
	COMPRESS_ZSTD   types.CompressionAlgorithm = 3
	COMPRESS_BROTLI types.CompressionAlgorithm = 4
	COMPRESS_LZ4    types.CompressionAlgorithm = 5
)

// EncodingToken returns the Content-Encoding value for an algorithm, or the
// empty string for COMPRESS_NONE.
func EncodingToken(algorithm types.CompressionAlgorithm) string {
	switch algorithm {
	case COMPRESS_GZIP:
		return "gzip"
	case COMPRESS_SNAPPY:
		return "snappy"
	case COMPRESS_ZSTD:
		return "zstd"
	case COMPRESS_BROTLI:
		return "br"
	case COMPRESS_LZ4:
		return "lz4"
	default:
		return ""
	}
}

// Compress encodes data with the selected algorithm. COMPRESS_NONE returns
// data unchanged.
func Compress(data []byte, algorithm types.CompressionAlgorithm) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser

	switch algorithm {
	case COMPRESS_NONE:
		return data, nil
	case COMPRESS_GZIP:
		w = gzip.NewWriter(&b)
	case COMPRESS_SNAPPY:
		w = snappy.NewBufferedWriter(&b)
	case COMPRESS_ZSTD:
		var err error
		w, err = zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
	case COMPRESS_BROTLI:
		w = brotli.NewWriterLevel(&b, brotli.DefaultCompression)
	case COMPRESS_LZ4:
		w = lz4.NewWriter(&b)
	default:
		return nil, fmt.Errorf("compression: unknown algorithm %d", algorithm)
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Decompress reverses Compress. Used by tests and by fallback tooling that
// inspects persisted bodies.
func Decompress(data []byte, algorithm types.CompressionAlgorithm) ([]byte, error) {
	var r io.Reader

	switch algorithm {
	case COMPRESS_NONE:
		return data, nil
	case COMPRESS_GZIP:
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	case COMPRESS_SNAPPY:
		r = snappy.NewReader(bytes.NewReader(data))
	case COMPRESS_ZSTD:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case COMPRESS_BROTLI:
		r = brotli.NewReader(bytes.NewReader(data))
	case COMPRESS_LZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("compression: unknown algorithm %d", algorithm)
	}

	return io.ReadAll(r)
}
