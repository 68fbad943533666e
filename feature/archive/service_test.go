package archive

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lb-status/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(client *mocks.Client) *Service {
	svc := NewService(client, "lb-reports", "/reports/", zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 5, 23, 14, 3, 9, 0, time.UTC) }
	return svc
}

func objects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k, Size: 10}
	}
	close(ch)
	return ch
}

func TestEnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "lb-reports").Return(true, nil)

		created, err := newTestService(client).EnsureBucket(context.Background())
		require.NoError(t, err)
		assert.False(t, created)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "lb-reports").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "lb-reports", mock.Anything).Return(nil)

		created, err := newTestService(client).EnsureBucket(context.Background())
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("MakeBucketFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "lb-reports").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "lb-reports", mock.Anything).Return(errors.New("denied"))

		_, err := newTestService(client).EnsureBucket(context.Background())
		assert.Error(t, err)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "lb-reports").Return(false, errors.New("timeout"))

		_, err := newTestService(client).EnsureBucket(context.Background())
		assert.Error(t, err)
	})
}

func TestUpload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "10.0.0.10_20250523_140309_lb_report.csv")
	require.NoError(t, os.WriteFile(file, []byte("a;b\n"), 0o644))

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "lb-reports", "reports/2025-05-23/10.0.0.10_20250523_140309_lb_report.csv",
		mock.Anything, int64(4), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "text/csv"
		})).Return(minio.UploadInfo{}, nil)

	name, err := newTestService(client).Upload(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "reports/2025-05-23/10.0.0.10_20250523_140309_lb_report.csv", name)
	client.AssertExpectations(t)
}

func TestUpload_Errors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := newTestService(new(mocks.Client)).Upload(context.Background(), filepath.Join(t.TempDir(), "none.xlsx"))
		assert.Error(t, err)
	})

	t.Run("PutFails", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "r.xlsx")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "lb-reports", mock.Anything, mock.Anything, int64(1), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("quota"))

		_, err := newTestService(client).Upload(context.Background(), file)
		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "lb-reports", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "reports/2025-05-23/" && opts.Recursive
	})).Return(objects("reports/2025-05-23/a.xlsx", "reports/2025-05-23/b.csv"))

	list, err := newTestService(client).List(context.Background(), "2025-05-23")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "reports/2025-05-23/a.xlsx", list[0].Name)

	_, err = newTestService(client).List(context.Background(), "yesterday")
	assert.Error(t, err)
}
