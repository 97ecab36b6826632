// Package objects is the connection-gated facade over the object store.
//
// A Service holds at most one storage connection and forwards each call to
// it. Every operation checks the connection first and fails with
// ErrNotConnected when Connect has not been called; failures from the store
// come back as *RemoteError wrapping the client library's error.
//
// # Operations
//
//   - CreateBucket / DeleteBucket: check existence first; the no-op branch
//     logs a warning instead of failing.
//   - UploadObject / UploadFile: upload from memory or from disk.
//   - DownloadObject: read an object fully into memory.
//   - DeleteObject: one-key batch delete returning the store's response.
//   - ListObjects: shallow, delimiter-based listing under a prefix.
//   - PresignURL: signed GET URL valid for one hour.
//   - ListBuckets: names of all visible buckets.
//
// # Usage
//
//	svc := objects.NewService(storage.NewClient, log)
//	if err := svc.Connect(cfg.Storage); err != nil {
//	    return err
//	}
//	err := svc.UploadObject(ctx, "assets", bytes.NewReader(data), "images/logo.png")
package objects
