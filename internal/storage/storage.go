package storage

import (
	"context"
	"fmt"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ObjectStorage is the subset of an S3-compatible store the service needs.
type ObjectStorage interface {
	// PutObject uploads body under objectKey, replacing any existing object.
	PutObject(ctx context.Context, objectKey, contentType string, body []byte) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for the object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// ProgramSnapshotKey is where the JSON snapshot of a generated program lives.
func ProgramSnapshotKey(userID, programID string) string {
	return fmt.Sprintf("programs/%s/%s.json", userID, programID)
}
