package movies

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"movie-manager/core/catalog"
	"movie-manager/core/reconcile"
	"movie-manager/core/remote"
	"movie-manager/feature/movies/models"
	moviereconcile "movie-manager/feature/movies/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Searcher looks up candidate movies in the catalog.
type Searcher interface {
	Search(ctx context.Context, term string) ([]catalog.Result, error)
}

// RemoteStore is the remote key-value backend movies are mirrored to.
type RemoteStore interface {
	Put(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
	Get(ctx context.Context, key string, out any) error
}

// Result is the outcome of a reconciliation.
type Result struct {
	Plan     *reconcile.Plan `json:"plan"`
	Executed int             `json:"executed"`
	DryRun   bool            `json:"dry_run"`
}

// Service handles movie operations.
type Service struct {
	store      *Store
	catalog    Searcher
	remote     RemoteStore
	dispatcher *remote.Dispatcher
	adapter    *moviereconcile.MovieAdapter
	logger     *zap.Logger
}

// NewService creates a new movie service.
func NewService(store *Store, searcher Searcher, rs RemoteStore, dispatcher *remote.Dispatcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dispatcher == nil {
		dispatcher = remote.NewDispatcher(1, logger)
	}
	return &Service{
		store:      store,
		catalog:    searcher,
		remote:     rs,
		dispatcher: dispatcher,
		adapter:    moviereconcile.NewAdapter(logger),
		logger:     logger,
	}
}

// Search returns the catalog matches for term.
func (s *Service) Search(ctx context.Context, term string) ([]models.MovieRepresentation, error) {
	results, err := s.catalog.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	reps := make([]models.MovieRepresentation, 0, len(results))
	for _, r := range results {
		reps = append(reps, models.MovieRepresentation{Title: r.Title})
	}
	return reps, nil
}

// CreateMovie saves a new unwatched movie and mirrors it remotely.
func (s *Service) CreateMovie(ctx context.Context, title string, done remote.Completion) (*models.Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	movie := &models.Movie{Title: title}
	if err := s.store.Create(ctx, movie); err != nil {
		s.logger.Error("Error saving movie", zap.String("title", title), zap.Error(err))
		return nil, fmt.Errorf("failed to save movie: %w", err)
	}

	if err := s.Put(ctx, movie, done); err != nil {
		return nil, err
	}
	return movie, nil
}

// SetWatched updates the watched flag of a movie and mirrors it remotely.
func (s *Service) SetWatched(ctx context.Context, identifier string, watched bool, done remote.Completion) (*models.Movie, error) {
	id, err := models.NormalizeIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	movie, err := s.store.Update(ctx, id, func(m *models.Movie) {
		m.HasWatched = watched
	})
	if errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("Error saving movie", zap.String("identifier", id), zap.Error(err))
		return nil, fmt.Errorf("failed to save movie: %w", err)
	}

	if err := s.Put(ctx, movie, done); err != nil {
		return nil, err
	}
	return movie, nil
}

// DeleteMovie removes a movie remotely and locally. The local delete does not wait
// for the remote one.
func (s *Service) DeleteMovie(ctx context.Context, identifier string, done remote.Completion) error {
	movie, err := s.GetMovie(ctx, identifier)
	if err != nil {
		return err
	}

	key := movie.Identifier
	s.dispatcher.Go(ctx, "delete "+key, func(ctx context.Context) error {
		return s.remote.Delete(ctx, key)
	}, done)

	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Error("Error deleting movie", zap.String("identifier", key), zap.Error(err))
		return err
	}
	return nil
}

// Put mirrors movie to the remote store in the background. A movie without an
// identifier gets one, persisted locally before the call is dispatched.
func (s *Service) Put(ctx context.Context, movie *models.Movie, done remote.Completion) error {
	if movie.EnsureIdentifier() {
		if err := s.store.Save(ctx, movie); err != nil {
			s.logger.Error("Error saving movie identifier", zap.String("title", movie.Title), zap.Error(err))
			return fmt.Errorf("failed to save movie: %w", err)
		}
	}

	rep, err := movie.Representation()
	if err != nil {
		return err
	}

	key := movie.Identifier
	s.dispatcher.Go(ctx, "put "+key, func(ctx context.Context) error {
		return s.remote.Put(ctx, key, rep)
	}, done)
	return nil
}

// ListMovies returns every stored movie.
func (s *Service) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.store.List(ctx)
}

// GetMovie returns one movie by identifier.
func (s *Service) GetMovie(ctx context.Context, identifier string) (*models.Movie, error) {
	id, err := models.NormalizeIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, id)
}

// Reconcile merges reps into the local store. A dry run only returns the plan.
func (s *Service) Reconcile(ctx context.Context, reps []models.MovieRepresentation, dryRun bool) (*Result, error) {
	result := &Result{DryRun: dryRun}
	err := s.store.Perform(ctx, func(db *gorm.DB) error {
		plan, executed, err := reconcile.Reconcile(ctx, s.adapter.Spec(), db, moviereconcile.Items(reps), reconcile.Options{DryRun: dryRun})
		if err != nil {
			return err
		}
		result.Plan = plan
		result.Executed = executed
		return nil
	})
	if err != nil {
		s.logger.Error("Error reconciling movies", zap.Int("count", len(reps)), zap.Error(err))
		return nil, fmt.Errorf("failed to reconcile movies: %w", err)
	}

	s.logger.Info("Reconciled movies",
		zap.Bool("dry_run", dryRun),
		zap.Int("updates", result.Plan.Summary.Updates),
		zap.Int("creates", result.Plan.Summary.Creates),
		zap.Int("skipped", result.Plan.Summary.Skipped),
	)
	return result, nil
}

// FetchRemote returns every representation in the remote store, ordered by key.
// A document stored without an identifier field takes its key as identifier.
func (s *Service) FetchRemote(ctx context.Context) ([]models.MovieRepresentation, error) {
	var doc map[string]models.MovieRepresentation
	if err := s.remote.Get(ctx, "", &doc); err != nil {
		return nil, fmt.Errorf("failed to fetch remote movies: %w", err)
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	reps := make([]models.MovieRepresentation, 0, len(keys))
	for _, key := range keys {
		rep := doc[key]
		if rep.Identifier == nil {
			if id, err := uuid.Parse(key); err == nil {
				rep.Identifier = &id
			}
		}
		reps = append(reps, rep)
	}
	return reps, nil
}

// SyncFromRemote reconciles the whole remote collection into the local store.
func (s *Service) SyncFromRemote(ctx context.Context, dryRun bool) (*Result, error) {
	reps, err := s.FetchRemote(ctx)
	if err != nil {
		return nil, err
	}
	return s.Reconcile(ctx, reps, dryRun)
}

// Close waits for in-flight remote calls.
func (s *Service) Close() {
	s.dispatcher.Wait()
}
