package reconcile_test

import (
	"context"
	"fmt"
	"testing"

	"movie-manager/core/database"
	corereconcile "movie-manager/core/reconcile"
	"movie-manager/feature/movies/models"
	"movie-manager/feature/movies/reconcile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Movie{}))
	return db
}

func watched(b bool) *bool { return &b }

func rep(title string, id *uuid.UUID, hasWatched *bool) models.MovieRepresentation {
	return models.MovieRepresentation{Title: title, Identifier: id, HasWatched: hasWatched}
}

func seed(t *testing.T, db *gorm.DB, title string, hasWatched bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, db.Create(&models.Movie{Title: title, Identifier: id.String(), HasWatched: hasWatched}).Error)
	return id
}

func allMovies(t *testing.T, db *gorm.DB) map[string]models.Movie {
	t.Helper()
	var movies []models.Movie
	require.NoError(t, db.Find(&movies).Error)
	out := make(map[string]models.Movie, len(movies))
	for _, m := range movies {
		out[m.Identifier] = m
	}
	return out
}

func run(t *testing.T, db *gorm.DB, reps []models.MovieRepresentation, dryRun bool) *corereconcile.Plan {
	t.Helper()
	adapter := reconcile.NewAdapter(nil)
	plan, _, err := corereconcile.Reconcile(context.Background(), adapter.Spec(), db, reconcile.Items(reps), corereconcile.Options{DryRun: dryRun})
	require.NoError(t, err)
	return plan
}

func TestReconcile_UpdatesMatchedMovie(t *testing.T) {
	db := setupDB(t)
	id := seed(t, db, "Old Title", false)

	plan := run(t, db, []models.MovieRepresentation{rep("New Title", &id, watched(true))}, false)

	assert.Equal(t, 1, plan.Summary.Updates)
	assert.Equal(t, 0, plan.Summary.Creates)

	movies := allMovies(t, db)
	require.Len(t, movies, 1)
	assert.Equal(t, "New Title", movies[id.String()].Title)
	assert.True(t, movies[id.String()].HasWatched)
}

func TestReconcile_CreatesUnmatchedMovie(t *testing.T) {
	db := setupDB(t)
	existing := seed(t, db, "Existing", true)
	fresh := uuid.New()

	plan := run(t, db, []models.MovieRepresentation{rep("Fresh", &fresh, watched(true))}, false)

	assert.Equal(t, 1, plan.Summary.Creates)
	movies := allMovies(t, db)
	require.Len(t, movies, 2)
	assert.Equal(t, "Fresh", movies[fresh.String()].Title)
	assert.True(t, movies[fresh.String()].HasWatched)
	assert.Equal(t, "Existing", movies[existing.String()].Title)
}

func TestReconcile_CreatesLargeBatch(t *testing.T) {
	db := setupDB(t)

	// Six columns per row puts one INSERT for the whole batch over SQLite's parameter limit.
	const n = 6000
	reps := make([]models.MovieRepresentation, n)
	for i := range reps {
		id := uuid.New()
		reps[i] = rep(fmt.Sprintf("Movie %d", i), &id, watched(i%2 == 0))
	}

	plan := run(t, db, reps, false)

	assert.Equal(t, n, plan.Summary.Creates)
	var count int64
	require.NoError(t, db.Model(&models.Movie{}).Count(&count).Error)
	assert.Equal(t, int64(n), count)
}

func TestReconcile_CreateDefaultsWatchedToFalse(t *testing.T) {
	db := setupDB(t)
	fresh := uuid.New()

	run(t, db, []models.MovieRepresentation{rep("No Flag", &fresh, nil)}, false)

	movies := allMovies(t, db)
	require.Contains(t, movies, fresh.String())
	assert.False(t, movies[fresh.String()].HasWatched)
}

func TestReconcile_IgnoresRepresentationsWithoutIdentifier(t *testing.T) {
	db := setupDB(t)

	plan := run(t, db, []models.MovieRepresentation{rep("Anonymous", nil, watched(true))}, false)

	assert.Equal(t, 1, plan.Summary.Unkeyed)
	assert.Empty(t, plan.Actions)
	assert.Empty(t, allMovies(t, db))
}

func TestReconcile_DuplicateIdentifiersLastWins(t *testing.T) {
	db := setupDB(t)
	id := uuid.New()

	plan := run(t, db, []models.MovieRepresentation{
		rep("First", &id, watched(false)),
		rep("Second", &id, watched(true)),
	}, false)

	assert.Equal(t, 1, plan.Summary.Duplicates)
	movies := allMovies(t, db)
	require.Len(t, movies, 1)
	assert.Equal(t, "Second", movies[id.String()].Title)
	assert.True(t, movies[id.String()].HasWatched)
}

func TestReconcile_SkipsMatchedWithoutWatchedFlag(t *testing.T) {
	db := setupDB(t)
	skipped := seed(t, db, "Keep Me", true)
	updated := seed(t, db, "Update Me", false)

	plan := run(t, db, []models.MovieRepresentation{
		rep("Changed", &skipped, nil),
		rep("Updated", &updated, watched(true)),
	}, false)

	assert.Equal(t, 1, plan.Summary.Skipped)
	assert.Equal(t, 1, plan.Summary.Updates)

	var reason string
	for _, action := range plan.Actions {
		if action.Type == corereconcile.ActionSkip {
			reason = action.Reason
		}
	}
	assert.Equal(t, reconcile.ErrWatchedMissing.Error(), reason)

	movies := allMovies(t, db)
	assert.Equal(t, "Keep Me", movies[skipped.String()].Title)
	assert.True(t, movies[skipped.String()].HasWatched)
	assert.Equal(t, "Updated", movies[updated.String()].Title)
	assert.True(t, movies[updated.String()].HasWatched)
}

func TestReconcile_DryRunLeavesStoreUntouched(t *testing.T) {
	db := setupDB(t)
	id := seed(t, db, "Original", false)
	fresh := uuid.New()

	plan := run(t, db, []models.MovieRepresentation{
		rep("Changed", &id, watched(true)),
		rep("Fresh", &fresh, nil),
	}, true)

	assert.Equal(t, 1, plan.Summary.Updates)
	assert.Equal(t, 1, plan.Summary.Creates)

	movies := allMovies(t, db)
	require.Len(t, movies, 1)
	assert.Equal(t, "Original", movies[id.String()].Title)
}

func TestMovieAdapter_ExtractKey(t *testing.T) {
	adapter := reconcile.NewAdapter(nil)
	id := uuid.New()

	key, ok := adapter.ExtractKey(rep("A", &id, nil))
	assert.True(t, ok)
	assert.Equal(t, id.String(), key)

	key, ok = adapter.ExtractKey(&models.MovieRepresentation{Title: "B", Identifier: &id})
	assert.True(t, ok)
	assert.Equal(t, id.String(), key)

	_, ok = adapter.ExtractKey(rep("C", nil, nil))
	assert.False(t, ok)

	_, ok = adapter.ExtractKey("not a representation")
	assert.False(t, ok)
}

func TestMovieAdapter_UpdateLocalRejectsWrongTypes(t *testing.T) {
	db := setupDB(t)
	adapter := reconcile.NewAdapter(nil)

	err := adapter.UpdateLocal(context.Background(), db, "movie", rep("A", nil, nil))
	assert.Error(t, err)

	err = adapter.CreateLocalBatch(context.Background(), db, []corereconcile.RemoteItem{42})
	assert.Error(t, err)
}
