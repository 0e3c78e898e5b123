// Package ratings keeps the customer ratings of catalog products.
//
// The whole collection lives in memory and is rewritten to a Backend on
// every submission. A missing or corrupt persisted collection loads as empty.
package ratings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/campanini-sabores/storefront/internal/models"
	"github.com/google/uuid"
)

const (
	MinScore = 1
	MaxScore = 5
)

var ErrInvalidScore = fmt.Errorf("score must be between %d and %d", MinScore, MaxScore)

// Store is the rating repository backed by a Backend
type Store struct {
	backend Backend
	logger  *slog.Logger
	newID   func() (string, error)

	mu      sync.RWMutex
	ratings []models.Rating
}

// NewStore creates an empty store. Call Load to read persisted ratings.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger,
		newID:   newRatingID,
	}
}

// newRatingID returns a time-ordered UUIDv7
func newRatingID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Load replaces the in-memory collection with the persisted one.
// Absent or unreadable data leaves the store empty and is only logged.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ratings = nil

	data, err := s.backend.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			s.logger.Info("no persisted ratings, starting empty")
		} else {
			s.logger.Warn("failed to read persisted ratings, starting empty", "error", err)
		}
		return
	}

	var ratings []models.Rating
	if err := json.Unmarshal(data, &ratings); err != nil {
		s.logger.Warn("persisted ratings are corrupt, starting empty", "error", err)
		return
	}

	s.ratings = ratings
	s.logger.Info("ratings loaded", "count", len(ratings))
}

// Submit appends a rating and persists the full collection before returning
func (s *Store) Submit(ctx context.Context, productID string, score int, comment string) (models.Rating, error) {
	if score < MinScore || score > MaxScore {
		return models.Rating{}, ErrInvalidScore
	}

	id, err := s.newID()
	if err != nil {
		return models.Rating{}, fmt.Errorf("generate rating id: %w", err)
	}

	rating := models.Rating{
		ID:        id,
		ProductID: productID,
		Score:     score,
		Comment:   comment,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.Rating, len(s.ratings), len(s.ratings)+1)
	copy(updated, s.ratings)
	updated = append(updated, rating)

	data, err := json.Marshal(updated)
	if err != nil {
		return models.Rating{}, fmt.Errorf("encode ratings: %w", err)
	}
	if err := s.backend.Write(ctx, data); err != nil {
		return models.Rating{}, fmt.Errorf("persist ratings: %w", err)
	}

	s.ratings = updated
	s.logger.Debug("rating submitted", "rating_id", id, "product_id", productID, "score", score)
	return rating, nil
}

// AverageFor returns the mean score of productID, or 0 without ratings
func (s *Store) AverageFor(productID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum, n := 0, 0
	for _, r := range s.ratings {
		if r.ProductID == productID {
			sum += r.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// All returns a copy of every rating in submission order
func (s *Store) All() []models.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Rating, len(s.ratings))
	copy(out, s.ratings)
	return out
}
