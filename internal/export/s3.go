package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/routemap-dev/routemap/internal/report"
)

// s3API is the subset of the S3 client the publisher needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads inventories to an S3 bucket, e.g. as a CI artifact
// consumed by dashboards.
type S3Publisher struct {
	client s3API
	bucket string
}

// NewS3Publisher creates a publisher using the ambient AWS configuration
// (environment, shared config, instance role).
func NewS3Publisher(ctx context.Context, bucket string) (*S3Publisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &S3Publisher{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// Publish uploads the inventory as JSON under the given key.
func (p *S3Publisher) Publish(ctx context.Context, key string, inv *report.Inventory) error {
	data, err := inv.MarshalIndented()
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("uploading s3://%s/%s: %w", p.bucket, key, err)
	}
	return nil
}

// SplitDestination parses a "bucket/key/parts" destination into bucket and
// key.
func SplitDestination(dest string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(dest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 destination %q, want bucket/key", dest)
	}
	return bucket, key, nil
}
