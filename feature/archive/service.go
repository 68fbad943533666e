package archive

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"lb-status/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DateLayout names the per-day folder of archived reports.
const DateLayout = "2006-01-02"

// Object is an archived report.
type Object struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service uploads report files to object storage under
// "<prefix>/<date>/<file>".
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new archive service.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
		now:    time.Now,
	}
}

// CheckBucket reports whether the archive bucket exists.
func (s *Service) CheckBucket(ctx context.Context) (bool, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return exists, nil
}

// EnsureBucket creates the archive bucket when it is missing. It reports
// whether the bucket was created.
func (s *Service) EnsureBucket(ctx context.Context) (bool, error) {
	exists, err := s.CheckBucket(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		s.logger.Error("Failed to create bucket", zap.String("bucket", s.bucket), zap.Error(err))
		return false, fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Created archive bucket", zap.String("bucket", s.bucket))
	return true, nil
}

// ObjectName returns the object name of a file archived at t.
func (s *Service) ObjectName(file string, t time.Time) string {
	return path.Join(s.prefix, t.Format(DateLayout), filepath.Base(file))
}

// Upload stores the file at localPath and returns its object name.
func (s *Service) Upload(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	name := s.ObjectName(localPath, s.now())
	_, err = s.client.PutObject(ctx, s.bucket, name, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType(localPath),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return name, nil
}

// List returns the reports archived on date (YYYY-MM-DD), or all reports
// when date is empty.
func (s *Service) List(ctx context.Context, date string) ([]Object, error) {
	prefix := s.prefix
	if date != "" {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", date, err)
		}
		prefix = path.Join(prefix, date)
	}
	if prefix != "" {
		prefix += "/"
	}

	objects := []Object{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		objects = append(objects, Object{Name: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}
	return objects, nil
}

func contentType(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
