// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a narrow interface for the operations the
// backup feature needs: checking and creating the bucket, uploading and downloading
// backup documents, listing them and removing old ones. It works against both AWS S3
// and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface makes storage interactions easy to mock in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "movies")
package storage
