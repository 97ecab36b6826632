package objects

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"s3-client/core/config"
	"s3-client/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestScenario_LiveEndpoint runs against a real S3-compatible endpoint, e.g.
//
//	docker run -p 9000:9000 minio/minio server /data
//	S3_ENDPOINT_URL=http://localhost:9000 AWS_ACCESS_KEY_ID=minioadmin \
//	AWS_SECRET_ACCESS_KEY=minioadmin go test ./feature/objects -run Live
func TestScenario_LiveEndpoint(t *testing.T) {
	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)
	if cfg.Storage.Endpoint == "" {
		t.Skip("S3_ENDPOINT_URL not set")
	}

	ctx := context.Background()
	svc := NewService(storage.NewClient, zaptest.NewLogger(t))

	t.Run("Gate Before Connect", func(t *testing.T) {
		assert.ErrorIs(t, svc.CreateBucket(ctx, testBucket), ErrNotConnected)
	})

	require.NoError(t, svc.Connect(cfg.Storage))

	t.Run("Create Bucket Twice", func(t *testing.T) {
		require.NoError(t, svc.CreateBucket(ctx, testBucket))
		require.NoError(t, svc.CreateBucket(ctx, testBucket))
	})

	t.Run("Upload And Download", func(t *testing.T) {
		require.NoError(t, svc.UploadObject(ctx, testBucket, bytes.NewReader([]byte("Test!")), "test-file.txt"))

		r, err := svc.DownloadObject(ctx, testBucket, "test-file.txt")
		require.NoError(t, err)
		assert.Equal(t, "Test!", readAll(t, r))
	})

	t.Run("Upload File And Shallow List", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nice.mp4")
		require.NoError(t, os.WriteFile(path, []byte("video"), 0o600))

		require.NoError(t, svc.UploadFile(ctx, testBucket, path, "speech/videos/nice.mp4"))
		require.NoError(t, svc.UploadObject(ctx, testBucket, bytes.NewReader([]byte("deep")), "speech/videos/deeper/x.bin"))

		keys, err := svc.ListObjects(ctx, testBucket, "speech/videos/")
		require.NoError(t, err)
		assert.Equal(t, []string{"speech/videos/nice.mp4"}, keys)

		for _, key := range []string{"speech/videos/nice.mp4", "speech/videos/deeper/x.bin"} {
			result, err := svc.DeleteObject(ctx, testBucket, key)
			require.NoError(t, err)
			require.NoError(t, result.Err())
		}
	})

	t.Run("Presign Missing Object", func(t *testing.T) {
		u, err := svc.PresignURL(ctx, testBucket, "does-not-exist.txt")
		require.NoError(t, err)
		assert.Contains(t, u, "X-Amz-Expires=3600")
	})

	t.Run("Delete Non Empty Bucket", func(t *testing.T) {
		err := svc.DeleteBucket(ctx, testBucket)
		assert.True(t, IsRemote(err))
	})

	t.Run("Delete Object Then Bucket", func(t *testing.T) {
		_, err := svc.DeleteObject(ctx, testBucket, "test-file.txt")
		require.NoError(t, err)
		require.NoError(t, svc.DeleteBucket(ctx, testBucket))
		require.NoError(t, svc.DeleteBucket(ctx, testBucket))
	})
}

func readAll(t *testing.T, r *bytes.Reader) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}
