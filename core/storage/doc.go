// Package storage provides the connection to an S3-compatible object store.
//
// It wraps the MinIO Go client behind the narrow Client interface so the
// rest of the module can be tested against mocks (see core/storage/mocks).
// The same client talks to AWS S3 and self-hosted MinIO instances.
//
// # Connection
//
// NewClient builds a client from Config. Requests are signed with S3 v4
// for the fixed Region. The endpoint may be given as a full URL
// (http://localhost:9000); an https scheme or UseSSL enables TLS. An
// empty endpoint falls back to AWS S3.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "assets")
package storage
