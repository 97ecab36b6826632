package objects

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"s3-client/core/logger"
	"s3-client/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// URLExpiry is the lifetime of URLs returned by PresignURL.
const URLExpiry = 3600 * time.Second

// Dialer opens a storage connection from configuration.
type Dialer func(cfg storage.Config) (storage.Client, error)

// Service forwards bucket and object operations to a single storage connection.
// It starts unconnected; every method except Connect and IsConnected fails with
// ErrNotConnected until Connect succeeds. There is no way to disconnect.
type Service struct {
	mu     sync.RWMutex
	client storage.Client
	dial   Dialer
	logger *zap.Logger
}

// NewService creates an unconnected service. dial is usually storage.NewClient.
func NewService(dial Dialer, logger *zap.Logger) *Service {
	return &Service{
		dial:   dial,
		logger: logger,
	}
}

// Connect opens a connection and makes it the service's only connection.
// A previous connection is dropped. Nothing is sent to the endpoint yet.
func (s *Service) Connect(cfg storage.Config) error {
	s.logger.Info("Connecting to storage", zap.String("endpoint", cfg.Endpoint))

	client, err := s.dial(cfg)
	if err != nil {
		return remote("connect", "", "", err)
	}

	s.mu.Lock()
	replaced := s.client != nil
	s.client = client
	s.mu.Unlock()

	if replaced {
		s.logger.Debug("Dropped previous storage connection")
	}
	s.logger.Info("Connected to storage", zap.String("region", storage.Region))
	return nil
}

// IsConnected reports whether Connect has succeeded.
func (s *Service) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client != nil
}

// withConn is the connection gate shared by every operation.
func withConn[T any](s *Service, op string, fn func(storage.Client) (T, error)) (T, error) {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()

	if client == nil {
		var zero T
		return zero, ErrNotConnected
	}

	s.logger.Debug("Storage call", zap.String("op", op))
	return fn(client)
}

func (s *Service) do(op string, fn func(storage.Client) error) error {
	_, err := withConn(s, op, func(c storage.Client) (struct{}, error) {
		return struct{}{}, fn(c)
	})
	return err
}

// ListBuckets returns the names of all buckets visible to the credentials.
func (s *Service) ListBuckets(ctx context.Context) ([]string, error) {
	return withConn(s, "list_buckets", func(c storage.Client) ([]string, error) {
		buckets, err := c.ListBuckets(ctx)
		if err != nil {
			return nil, remote("list_buckets", "", "", err)
		}

		names := make([]string, 0, len(buckets))
		for _, b := range buckets {
			names = append(names, b.Name)
		}
		return names, nil
	})
}

// CreateBucket creates the bucket unless it already exists, in which case a
// warning is logged and nil returned. The check and the create are separate
// requests; a concurrent creator surfaces as a RemoteError.
func (s *Service) CreateBucket(ctx context.Context, name string) error {
	return s.do("create_bucket", func(c storage.Client) error {
		l := logger.WithObject(s.logger, name, "")

		exists, err := c.BucketExists(ctx, name)
		if err != nil {
			return remote("create_bucket", name, "", err)
		}
		if exists {
			l.Warn("Bucket already exists")
			return nil
		}

		if err := c.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: storage.Region}); err != nil {
			return remote("create_bucket", name, "", err)
		}
		l.Info("Created bucket")
		return nil
	})
}

// DeleteBucket deletes the bucket if it exists; a missing bucket is logged as
// a warning. Deleting a non-empty bucket fails with a RemoteError.
func (s *Service) DeleteBucket(ctx context.Context, name string) error {
	return s.do("delete_bucket", func(c storage.Client) error {
		l := logger.WithObject(s.logger, name, "")

		exists, err := c.BucketExists(ctx, name)
		if err != nil {
			return remote("delete_bucket", name, "", err)
		}
		if !exists {
			l.Warn("Bucket does not exist")
			return nil
		}

		if err := c.RemoveBucket(ctx, name); err != nil {
			return remote("delete_bucket", name, "", err)
		}
		l.Info("Deleted bucket")
		return nil
	})
}

// UploadObject streams payload to key. The transfer strategy is left to the
// client library; the size is passed along when payload knows its length.
func (s *Service) UploadObject(ctx context.Context, bucket string, payload io.Reader, key string) error {
	return s.do("upload_obj", func(c storage.Client) error {
		if _, err := c.PutObject(ctx, bucket, key, payload, payloadSize(payload), minio.PutObjectOptions{}); err != nil {
			return remote("upload_obj", bucket, key, err)
		}
		return nil
	})
}

// UploadFile uploads the local file at path to key.
func (s *Service) UploadFile(ctx context.Context, bucket, path, key string) error {
	return s.do("upload_file", func(c storage.Client) error {
		if _, err := c.FPutObject(ctx, bucket, key, path, minio.PutObjectOptions{}); err != nil {
			return remote("upload_file", bucket, key, err)
		}
		return nil
	})
}

// DownloadObject reads the whole object into memory. The returned reader is
// positioned at the start.
func (s *Service) DownloadObject(ctx context.Context, bucket, key string) (*bytes.Reader, error) {
	return withConn(s, "download_obj", func(c storage.Client) (*bytes.Reader, error) {
		obj, err := c.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return nil, remote("download_obj", bucket, key, err)
		}
		defer obj.Close()

		// minio defers the request until the first read, so a missing key fails here.
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, obj); err != nil {
			return nil, remote("download_obj", bucket, key, err)
		}
		return bytes.NewReader(buf.Bytes()), nil
	})
}

// DeleteResult is the store's response to a batch delete.
type DeleteResult struct {
	// Bucket is the bucket the delete was sent to.
	Bucket string
	// Deleted lists the keys the store reported as removed.
	Deleted []string
	// Errors holds the entries the store reported as failed.
	Errors []minio.RemoveObjectResult
}

// Err joins the per-key failures, or returns nil when there are none.
func (r *DeleteResult) Err() error {
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, remote("delete_obj", r.Bucket, e.ObjectName, e.Err))
	}
	return errors.Join(errs...)
}

// DeleteObject sends a batch delete holding exactly one key and returns the
// store's response. Failures the store reports for that key are in the
// result, not the error; callers that only need fire-and-forget semantics
// can ignore the result.
func (s *Service) DeleteObject(ctx context.Context, bucket, key string) (*DeleteResult, error) {
	return withConn(s, "delete_obj", func(c storage.Client) (*DeleteResult, error) {
		objectsCh := make(chan minio.ObjectInfo, 1)
		objectsCh <- minio.ObjectInfo{Key: key}
		close(objectsCh)

		result := &DeleteResult{Bucket: bucket}
		for res := range c.RemoveObjectsWithResult(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{}) {
			if res.Err != nil {
				result.Errors = append(result.Errors, res)
				continue
			}
			result.Deleted = append(result.Deleted, res.ObjectName)
		}

		l := logger.WithObject(s.logger, bucket, key)
		switch {
		case len(result.Errors) > 0:
			l.Warn("Delete reported failures", zap.Error(result.Err()))
		case len(result.Deleted) == 0:
			l.Warn("Delete response did not mention the key")
		}
		return result, nil
	})
}

// ListObjects returns the keys directly under prefix, in listing order.
// The listing uses the "/" delimiter and does not descend into deeper
// "directories"; those common prefixes are not returned. Pagination is
// handled by the client library, so the result is complete.
func (s *Service) ListObjects(ctx context.Context, bucket, prefix string) ([]string, error) {
	return withConn(s, "get_all_objects", func(c storage.Client) ([]string, error) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		opts := minio.ListObjectsOptions{
			Prefix:    prefix,
			Recursive: false,
		}

		var keys []string
		for obj := range c.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, remote("get_all_objects", bucket, prefix, obj.Err)
			}
			if isCommonPrefix(obj) {
				continue
			}
			keys = append(keys, obj.Key)
		}
		return keys, nil
	})
}

// PresignURL returns a signed GET URL valid for URLExpiry. The object is
// not checked; a missing key is only rejected when the URL is fetched.
func (s *Service) PresignURL(ctx context.Context, bucket, key string) (string, error) {
	return withConn(s, "get_file_url", func(c storage.Client) (string, error) {
		u, err := c.PresignedGetObject(ctx, bucket, key, URLExpiry, nil)
		if err != nil {
			return "", remote("get_file_url", bucket, key, err)
		}
		return u.String(), nil
	})
}

func payloadSize(r io.Reader) int64 {
	if l, ok := r.(interface{ Len() int }); ok {
		return int64(l.Len())
	}
	return -1
}

// isCommonPrefix reports whether obj is a delimiter group rather than an
// object. minio emits those with only the key set.
func isCommonPrefix(obj minio.ObjectInfo) bool {
	return strings.HasSuffix(obj.Key, "/") && obj.ETag == "" && obj.LastModified.IsZero()
}
