// Package storageclient implements the signed-URL object storage adapter. It
// presigns PUT requests against S3 (or any S3-compatible endpoint) and uploads
// bodies to previously issued URLs. The adapter never retries; the delivery
// engine owns the retry policy for attachment and offload uploads.
package storageclient

import (
	"context"
	"net/http"
	"sync"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joeydtaylor/filament/pkg/internal/types"
	"github.com/joeydtaylor/filament/pkg/internal/utils"
)

const defaultURLTTL = 15 * time.Minute

// putPresigner matches the subset of s3.PresignClient the adapter needs.
type putPresigner interface {
	PresignPutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// StorageClient is the concrete signed-URL storage adapter.
type StorageClient struct {
	componentMetadata types.ComponentMetadata

	configLock sync.Mutex
	bucket     string
	urlTTL     time.Duration

	presigner  putPresigner
	httpClient *http.Client

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewStorageClient constructs a storage adapter. A usable adapter needs an S3
// client (WithS3Client) and a bucket.
func NewStorageClient(options ...types.Option[types.StorageClient]) types.StorageClient {
	sc := &StorageClient{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "STORAGE_CLIENT",
		},
		urlTTL:     defaultURLTTL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, option := range options {
		option(sc)
	}
	return sc
}

// SetS3Client wires the AWS client the adapter presigns with.
func (sc *StorageClient) SetS3Client(cli *s3.Client) {
	sc.configLock.Lock()
	sc.presigner = s3.NewPresignClient(cli)
	sc.configLock.Unlock()
}
