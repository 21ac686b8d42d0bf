package movies

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"movie-manager/feature/movies/models"

	"gorm.io/gorm"
)

// Sentinel errors returned by the store and the movie service.
var (
	ErrNotFound          = errors.New("movie not found")
	ErrTitleRequired     = errors.New("movie title is required")
	ErrInvalidIdentifier = models.ErrInvalidIdentifier
)

// Store is the local movie store. All access goes through Perform, which runs one
// unit of work at a time.
type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewStore creates the movies table if needed and returns a store backed by db.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.Movie{}); err != nil {
		return nil, fmt.Errorf("failed to create movies table: %w", err)
	}
	return &Store{db: db}, nil
}

// DB returns the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Perform runs fn with exclusive access to the store.
// fn must not call back into the store.
func (s *Store) Perform(ctx context.Context, fn func(db *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.db.WithContext(ctx))
}

// Create inserts movie, assigning an identifier when it has none.
func (s *Store) Create(ctx context.Context, movie *models.Movie) error {
	return s.Perform(ctx, func(db *gorm.DB) error {
		return db.Create(movie).Error
	})
}

// Save writes every field of movie.
func (s *Store) Save(ctx context.Context, movie *models.Movie) error {
	return s.Perform(ctx, func(db *gorm.DB) error {
		return db.Save(movie).Error
	})
}

// Get returns the movie with identifier.
func (s *Store) Get(ctx context.Context, identifier string) (*models.Movie, error) {
	var movie models.Movie
	err := s.Perform(ctx, func(db *gorm.DB) error {
		return db.Where("identifier = ?", identifier).First(&movie).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, identifier)
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Update loads the movie with identifier, applies fn and saves it as one unit of work,
// so no other store access can land between the read and the write.
func (s *Store) Update(ctx context.Context, identifier string, fn func(movie *models.Movie)) (*models.Movie, error) {
	var movie models.Movie
	err := s.Perform(ctx, func(db *gorm.DB) error {
		if err := db.Where("identifier = ?", identifier).First(&movie).Error; err != nil {
			return err
		}
		fn(&movie)
		return db.Save(&movie).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, identifier)
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// List returns all movies ordered by title.
func (s *Store) List(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	err := s.Perform(ctx, func(db *gorm.DB) error {
		return db.Order("title").Order("id").Find(&movies).Error
	})
	return movies, err
}

// Delete removes the movie with identifier.
func (s *Store) Delete(ctx context.Context, identifier string) error {
	return s.Perform(ctx, func(db *gorm.DB) error {
		res := db.Where("identifier = ?", identifier).Delete(&models.Movie{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, identifier)
		}
		return nil
	})
}
