// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the two
// storage paths data-manager uses: uploading serialized exports and reading
// import payloads from a bucket. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "exports")
package storage
