package objects

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned by every operation invoked before Connect.
var ErrNotConnected = errors.New("no connection established; call connect() first")

// RemoteError wraps a failure reported by the object store or its client
// library. Err is the untouched SDK error (usually a minio.ErrorResponse).
type RemoteError struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *RemoteError) Error() string {
	switch {
	case e.Key != "":
		return fmt.Sprintf("%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	case e.Bucket != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Bucket, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsRemote reports whether err came from the object store.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

func remote(op, bucket, key string, err error) error {
	return &RemoteError{Op: op, Bucket: bucket, Key: key, Err: err}
}
