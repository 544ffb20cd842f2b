package storageclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// GetUploadURL presigns a PUT of size bytes with the given MIME type at key.
func (sc *StorageClient) GetUploadURL(ctx context.Context, key string, mimeType string, size int64) (string, error) {
	sc.configLock.Lock()
	presigner := sc.presigner
	bucket := sc.bucket
	ttl := sc.urlTTL
	sc.configLock.Unlock()

	if presigner == nil {
		return "", fmt.Errorf("storageclient: no s3 client configured")
	}
	if bucket == "" {
		return "", fmt.Errorf("storageclient: no bucket configured")
	}
	if key == "" {
		return "", fmt.Errorf("storageclient: empty storage key")
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		ContentLength: aws.Int64(size),
	}
	if mimeType != "" {
		input.ContentType = aws.String(mimeType)
	}

	req, err := presigner.PresignPutObject(ctx, input, func(o *s3.PresignOptions) {
		o.Expires = ttl
	})
	if err != nil {
		sc.NotifyLoggers(types.ErrorLevel, "presign failed",
			"component", sc.componentMetadata, "bucket", bucket, "key", key, "error", err)
		return "", fmt.Errorf("storageclient: presign %s: %w", key, err)
	}

	sc.NotifyLoggers(types.DebugLevel, "presigned upload url",
		"component", sc.componentMetadata, "bucket", bucket, "key", key, "size", size)
	return req.URL, nil
}

// UploadToSignedURL PUTs data to a URL previously returned by GetUploadURL.
// A non-2xx response is an error; the caller decides whether to retry.
func (sc *StorageClient) UploadToSignedURL(ctx context.Context, url string, data []byte, mimeType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("storageclient: build upload request: %w", err)
	}
	if mimeType != "" {
		req.Header.Set("Content-Type", mimeType)
	}
	req.ContentLength = int64(len(data))

	resp, err := sc.httpClient.Do(req)
	if err != nil {
		sc.NotifyLoggers(types.ErrorLevel, "upload failed",
			"component", sc.componentMetadata, "error", err)
		return fmt.Errorf("storageclient: upload: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		sc.NotifyLoggers(types.ErrorLevel, "upload rejected",
			"component", sc.componentMetadata, "status", resp.StatusCode)
		return fmt.Errorf("storageclient: upload returned status %d", resp.StatusCode)
	}
	return nil
}
