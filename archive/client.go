// Package archive stores a JSON snapshot of every closed ticket in
// object storage, so closed conversations survive database retention
// cleanups.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/translationdesk/platform-go/models"
)

// Archiver is implemented by the MinIO client and by test fakes.
type Archiver interface {
	ArchiveTicket(ctx context.Context, ticket *models.Ticket) error
}

type Client struct {
	client *minioSDK.Client
	bucket string
}

// NewClient connects to MinIO and ensures the bucket exists. An empty
// endpoint returns a disabled client whose methods are no-ops.
func NewClient(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Client, error) {
	if endpoint == "" {
		return &Client{}, nil
	}

	mc, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("archive: connect minio: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := mc.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("archive: check bucket: %w", err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("archive: create bucket: %w", err)
		}
	}

	return &Client{client: mc, bucket: bucket}, nil
}

// ArchiveTicket uploads the full ticket snapshot under
// <year>/<month>/<ticket-id>.json.
func (c *Client) ArchiveTicket(ctx context.Context, ticket *models.Ticket) error {
	if c.client == nil {
		return nil
	}

	body, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("archive: marshal ticket %s: %w", ticket.ID, err)
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("%d/%02d/%s.json", now.Year(), now.Month(), ticket.ID)

	_, err = c.client.PutObject(ctx, c.bucket, key, bytes.NewReader(body), int64(len(body)),
		minioSDK.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("archive: put ticket %s: %w", ticket.ID, err)
	}
	return nil
}
