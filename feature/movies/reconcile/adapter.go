package reconcile

import (
	"context"
	"errors"
	"fmt"

	"movie-manager/core/reconcile"
	"movie-manager/feature/movies/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// createBatchSize bounds the rows per INSERT so large syncs stay under SQLite's
// bound-parameter limit.
const createBatchSize = 500

// ErrWatchedMissing rejects a representation that would overwrite a record without a watched flag.
var ErrWatchedMissing = errors.New("representation has no watched flag")

// MovieAdapter implements reconcile.Mutator and reconcile.BatchCreator for movies.
// Remote items are models.MovieRepresentation values, local items are *models.Movie.
type MovieAdapter struct {
	logger *zap.Logger
}

// NewAdapter creates a new movie adapter.
func NewAdapter(logger *zap.Logger) *MovieAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MovieAdapter{logger: logger}
}

// Spec returns a reconcile spec using a.
func (a *MovieAdapter) Spec() *reconcile.Spec {
	return &reconcile.Spec{Adapter: a}
}

// Name returns the unique name of this adapter.
func (a *MovieAdapter) Name() string {
	return "movies"
}

// ExtractKey returns the canonical identifier of a representation.
func (a *MovieAdapter) ExtractKey(item reconcile.RemoteItem) (string, bool) {
	rep, ok := toRepresentation(item)
	if !ok {
		return "", false
	}
	return rep.Key()
}

// LoadLocalIndex loads the movies whose identifier is in keys.
func (a *MovieAdapter) LoadLocalIndex(ctx context.Context, db *gorm.DB, keys []string) (map[string]reconcile.LocalItem, error) {
	var movies []models.Movie
	if err := db.WithContext(ctx).Where("identifier IN ?", keys).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	index := make(map[string]reconcile.LocalItem, len(movies))
	for i := range movies {
		movie := &movies[i]
		index[movie.Identifier] = movie
	}
	return index, nil
}

// CheckUpdate rejects matched representations lacking a watched flag.
func (a *MovieAdapter) CheckUpdate(local reconcile.LocalItem, remote reconcile.RemoteItem) error {
	rep, ok := toRepresentation(remote)
	if !ok {
		return fmt.Errorf("unexpected remote item %T", remote)
	}
	if rep.HasWatched == nil {
		key, _ := rep.Key()
		a.logger.Warn("Skipping movie update", zap.String("identifier", key), zap.String("title", rep.Title), zap.Error(ErrWatchedMissing))
		return ErrWatchedMissing
	}
	return nil
}

// UpdateLocal overwrites the matched movie from its representation.
func (a *MovieAdapter) UpdateLocal(ctx context.Context, tx *gorm.DB, local reconcile.LocalItem, remote reconcile.RemoteItem) error {
	movie, ok := local.(*models.Movie)
	if !ok {
		return fmt.Errorf("unexpected local item %T", local)
	}
	rep, ok := toRepresentation(remote)
	if !ok {
		return fmt.Errorf("unexpected remote item %T", remote)
	}

	movie.Apply(rep)
	return tx.WithContext(ctx).Save(movie).Error
}

// CreateLocal inserts a movie built from remote.
func (a *MovieAdapter) CreateLocal(ctx context.Context, tx *gorm.DB, remote reconcile.RemoteItem) error {
	return a.CreateLocalBatch(ctx, tx, []reconcile.RemoteItem{remote})
}

// CreateLocalBatch inserts one movie per representation, createBatchSize rows per statement.
func (a *MovieAdapter) CreateLocalBatch(ctx context.Context, tx *gorm.DB, remotes []reconcile.RemoteItem) error {
	if len(remotes) == 0 {
		return nil
	}

	movies := make([]*models.Movie, 0, len(remotes))
	for _, remote := range remotes {
		rep, ok := toRepresentation(remote)
		if !ok {
			return fmt.Errorf("unexpected remote item %T", remote)
		}
		movies = append(movies, models.NewMovie(rep))
	}
	return tx.WithContext(ctx).CreateInBatches(movies, createBatchSize).Error
}

// Items converts representations to reconcile items.
func Items(reps []models.MovieRepresentation) []reconcile.RemoteItem {
	items := make([]reconcile.RemoteItem, len(reps))
	for i, rep := range reps {
		items[i] = rep
	}
	return items
}

func toRepresentation(item reconcile.RemoteItem) (models.MovieRepresentation, bool) {
	switch v := item.(type) {
	case models.MovieRepresentation:
		return v, true
	case *models.MovieRepresentation:
		if v == nil {
			return models.MovieRepresentation{}, false
		}
		return *v, true
	default:
		return models.MovieRepresentation{}, false
	}
}
