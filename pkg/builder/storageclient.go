package builder

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joeydtaylor/filament/pkg/internal/adapter/storageclient"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

func NewStorageClient(options ...types.Option[types.StorageClient]) types.StorageClient {
	return storageclient.NewStorageClient(options...)
}

func StorageClientWithS3Client(cli *s3.Client) types.Option[types.StorageClient] {
	return storageclient.WithS3Client(cli)
}

func StorageClientWithBucket(bucket string) types.Option[types.StorageClient] {
	return storageclient.WithBucket(bucket)
}

func StorageClientWithURLTTL(ttl time.Duration) types.Option[types.StorageClient] {
	return storageclient.WithURLTTL(ttl)
}

func StorageClientWithLogger(logger ...types.Logger) types.Option[types.StorageClient] {
	return storageclient.WithLogger(logger...)
}

func StorageClientWithSensor(sensor ...types.Sensor) types.Option[types.StorageClient] {
	return storageclient.WithSensor(sensor...)
}

// NewS3ClientStatic creates an S3 client using static credentials.
// If endpoint != "", it's used (LocalStack/MinIO). forcePathStyle=true for emulators.
func NewS3ClientStatic(
	ctx context.Context,
	region string,
	accessKey string,
	secretKey string,
	sessionToken string,
	endpoint string,
	forcePathStyle bool,
) (*s3.Client, error) {
	return storageclient.NewS3ClientStatic(ctx, region, accessKey, secretKey, sessionToken, endpoint, forcePathStyle)
}

// NewS3ClientAssumeRole creates an S3 client by assuming an IAM role via STS.
func NewS3ClientAssumeRole(
	ctx context.Context,
	region string,
	roleARN string,
	sessionName string,
	duration time.Duration,
	externalID string,
	sourceCreds aws.CredentialsProvider,
	endpoint string,
	forcePathStyle bool,
) (*s3.Client, error) {
	return storageclient.NewS3ClientAssumeRole(ctx, region, roleARN, sessionName, duration, externalID, sourceCreds, endpoint, forcePathStyle)
}
