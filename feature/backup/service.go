package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"movie-manager/core/storage"
	"movie-manager/feature/movies"
	"movie-manager/feature/movies/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Sentinel errors returned by the backup service.
var (
	ErrInvalidObject = errors.New("invalid backup object name")
	ErrNotFound      = errors.New("backup not found")
)

const timestampLayout = "20060102T150405.000Z"

// MovieSource is the movie store a backup reads from and restores into.
type MovieSource interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	Reconcile(ctx context.Context, reps []models.MovieRepresentation, dryRun bool) (*movies.Result, error)
}

// Info describes one backup object.
type Info struct {
	Object       string    `json:"object"`
	Size         int64     `json:"size"`
	Count        int       `json:"count,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Service writes and restores movie backups in object storage.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	source MovieSource
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new backup service.
func NewService(client storage.Client, cfg storage.Config, source MovieSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	prefix := cfg.BackupPrefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Service{
		client: client,
		bucket: cfg.Bucket,
		prefix: prefix,
		source: source,
		logger: logger.Named("backup"),
		now:    time.Now,
	}
}

// Bucket returns the bucket backups are written to.
func (s *Service) Bucket() string {
	return s.bucket
}

// Export writes every stored movie to a new backup object, creating the bucket if needed.
func (s *Service) Export(ctx context.Context) (*Info, error) {
	list, err := s.source.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	reps := make([]models.MovieRepresentation, 0, len(list))
	for i := range list {
		rep, err := list[i].Representation()
		if err != nil {
			s.logger.Warn("Skipping movie with invalid identifier", zap.String("title", list[i].Title), zap.Error(err))
			continue
		}
		reps = append(reps, rep)
	}

	data, err := json.Marshal(reps)
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	object := s.prefix + "movies-" + now.Format(timestampLayout) + ".json"
	info, err := s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		s.logger.Error("Error writing backup", zap.String("object", object), zap.Error(err))
		return nil, fmt.Errorf("failed to write backup %s: %w", object, err)
	}

	s.logger.Info("Backup written", zap.String("object", object), zap.Int("movies", len(reps)))
	return &Info{Object: object, Size: info.Size, Count: len(reps), LastModified: now}, nil
}

// List returns the backups in the bucket, newest first.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return []Info{}, nil
	}

	backups := []Info{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		backups = append(backups, Info{Object: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Object > backups[j].Object
	})
	return backups, nil
}

// Import reads a backup and reconciles it into the store.
func (s *Service) Import(ctx context.Context, object string, dryRun bool) (*movies.Result, error) {
	reps, err := s.read(ctx, object)
	if err != nil {
		return nil, err
	}

	result, err := s.source.Reconcile(ctx, reps, dryRun)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Backup imported", zap.String("object", object), zap.Bool("dry_run", dryRun), zap.Int("executed", result.Executed))
	return result, nil
}

// Delete removes a backup object.
func (s *Service) Delete(ctx context.Context, object string) error {
	if err := s.validate(object); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete backup %s: %w", object, err)
	}
	return nil
}

func (s *Service) read(ctx context.Context, object string) ([]models.MovieRepresentation, error) {
	if err := s.validate(object); err != nil {
		return nil, err
	}

	rc, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrapReadErr(object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, s.wrapReadErr(object, err)
	}

	var reps []models.MovieRepresentation
	if err := json.Unmarshal(data, &reps); err != nil {
		return nil, fmt.Errorf("failed to decode backup %s: %w", object, err)
	}
	return reps, nil
}

func (s *Service) wrapReadErr(object string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrNotFound, object)
	}
	return fmt.Errorf("failed to read backup %s: %w", object, err)
}

func (s *Service) validate(object string) error {
	if object == "" || !strings.HasPrefix(object, s.prefix) || !strings.HasSuffix(object, ".json") || strings.Contains(object, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidObject, object)
	}
	return nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Created bucket", zap.String("bucket", s.bucket))
	return nil
}
