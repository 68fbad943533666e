// Package storage wraps the MinIO Go client used to archive generated
// reports in S3 compatible object storage.
//
// The Client interface holds only the calls the archive needs, so tests can
// replace it with mocks.Client.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
