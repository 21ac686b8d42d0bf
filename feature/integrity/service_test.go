package integrity

import (
	"context"
	"errors"
	"testing"

	"movie-manager/core/database"
	"movie-manager/core/storage"
	"movie-manager/core/storage/mocks"
	"movie-manager/feature/movies/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testStorage = storage.Config{Bucket: "test-bucket", BackupPrefix: "backups/"}

func setupSQLite(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	if migrate {
		require.NoError(t, db.AutoMigrate(&models.Movie{}))
	}
	return db
}

func TestService_CheckAllHealthy(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return(mocks.Objects(minio.ObjectInfo{Key: "backups/movies-1.json"}))

	svc := NewService(client, testStorage, setupSQLite(t, true), zap.NewNop())
	report := svc.CheckAll(context.Background())

	assert.True(t, report.Healthy)
	assert.Empty(t, report.Errors)
	assert.True(t, report.Database.Matched)
	assert.Equal(t, 1, report.Storage.Backups)
}

func TestService_CheckAllProblems(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "test-bucket").Return(false, errors.New("connection refused"))

	svc := NewService(client, testStorage, setupSQLite(t, false), zap.NewNop())
	report := svc.CheckAll(context.Background())

	assert.False(t, report.Healthy)
	assert.False(t, report.Database.Matched)
	assert.Contains(t, report.Errors["storage"], "connection refused")
}

func TestService_NoDatabaseNoStorage(t *testing.T) {
	svc := NewService(nil, testStorage, nil, nil)
	report := svc.CheckAll(context.Background())

	assert.False(t, report.Healthy)
	assert.Contains(t, report.Errors, "database")
	assert.Contains(t, report.Errors, "storage")
}
