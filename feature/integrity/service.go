package integrity

import (
	"context"

	"movie-manager/core/storage"
	"movie-manager/feature/integrity/checks"
	"movie-manager/feature/movies/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report combines the results of every check.
type Report struct {
	Database *checks.SchemaReport  `json:"database,omitempty"`
	Storage  *checks.StorageReport `json:"storage,omitempty"`
	Errors   map[string]string     `json:"errors,omitempty"`
	Healthy  bool                  `json:"healthy"`
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil when no storage is configured.
func NewService(client storage.Client, cfg storage.Config, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.BackupPrefix,
		db:     db,
		logger: logger,
	}
}

// CheckDatabase compares the movie tables with their models.
func (s *Service) CheckDatabase() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.Movie{})
}

// CheckStorage reports on the backup bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.bucket, s.prefix)
}

// FixStorage creates the backup bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	return checks.FixStorage(ctx, s.client, s.bucket, s.logger)
}

// CheckAll runs every check. A failing check is recorded in the report, not returned.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{Errors: map[string]string{}, Healthy: true}

	if db, err := s.CheckDatabase(); err != nil {
		report.Errors["database"] = err.Error()
		report.Healthy = false
	} else {
		report.Database = db
		report.Healthy = report.Healthy && db.Matched
	}

	if st, err := s.CheckStorage(ctx); err != nil {
		report.Errors["storage"] = err.Error()
		report.Healthy = false
	} else {
		report.Storage = st
		report.Healthy = report.Healthy && st.Exists
	}

	return report
}
