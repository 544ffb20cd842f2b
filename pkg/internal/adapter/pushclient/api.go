package pushclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/joeydtaylor/filament/pkg/internal/compression"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// Push delivers one NDJSON body for repository. The body is compressed here,
// after chunking, so the engine's 5 MB cap always refers to the uncompressed
// line data.
func (p *PushClient) Push(ctx context.Context, repository string, body []byte) error {
	p.configLock.Lock()
	baseURL := p.baseURL
	apiKey := p.apiKey
	timeout := p.timeout
	algorithm := p.compression
	headers := make(map[string]string, len(p.headers))
	for k, v := range p.headers {
		headers[k] = v
	}
	p.configLock.Unlock()

	if baseURL == "" {
		return fmt.Errorf("pushclient: base URL not configured")
	}
	if repository == "" {
		return fmt.Errorf("pushclient: repository is required")
	}

	payload := body
	if algorithm != compression.COMPRESS_NONE {
		compressed, err := compression.Compress(body, algorithm)
		if err != nil {
			return fmt.Errorf("pushclient: compress body: %w", err)
		}
		payload = compressed
	}

	pushCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := strings.TrimRight(baseURL, "/") + commitPath
	req, err := http.NewRequestWithContext(pushCtx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("pushclient: build request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set(repositoryHeader, repository)
	if apiKey != "" {
		req.Header.Set(apiKeyHeader, apiKey)
	}
	if token := compression.EncodingToken(algorithm); token != "" {
		req.Header.Set("Content-Encoding", token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.notifyPushFailure(err)
		return fmt.Errorf("pushclient: push to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("pushclient: push to %s: status %d", endpoint, resp.StatusCode)
		p.notifyPushFailure(err)
		return err
	}

	p.NotifyLoggers(
		types.DebugLevel,
		"Push delivered",
		"component", p.componentMetadata,
		"repository", repository,
		"bytes", len(payload),
		"encoding", compression.EncodingToken(algorithm),
	)
	return nil
}

// Close releases idle connections held by the transport.
func (p *PushClient) Close() error {
	p.httpClient.CloseIdleConnections()
	return nil
}

func (p *PushClient) notifyPushFailure(err error) {
	for _, sensor := range p.snapshotSensors() {
		if sensor != nil {
			sensor.InvokeOnPushFailure(p.componentMetadata, err)
		}
	}
	p.NotifyLoggers(
		types.WarnLevel,
		"Push failed",
		"component", p.componentMetadata,
		"error", err,
	)
}
