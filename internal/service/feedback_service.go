package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"budgetboard/internal/models"
	"budgetboard/internal/repository"

	"go.uber.org/zap"
)

// ErrEmptyFeedback rejects submissions whose text is blank after trimming.
var ErrEmptyFeedback = errors.New("feedback text is empty")

// Rating bounds for a feedback entry.
const (
	MinRating = 1
	MaxRating = 5
)

// FeedbackStore is the persistence boundary the service writes through. The
// file-backed repository implements it; tests may substitute an in-memory
// fake.
type FeedbackStore interface {
	Load() ([]models.FeedbackEntry, error)
	Save(entries []models.FeedbackEntry) error
}

// FeedbackService keeps the session's feedback sequence in memory and mirrors
// it to the store on every successful submission.
type FeedbackService struct {
	mu      sync.Mutex
	store   FeedbackStore
	entries []models.FeedbackEntry
	logger  *zap.Logger
}

// NewFeedbackService loads the persisted sequence once; the result is cached
// for the session's lifetime and only changed by Submit.
func NewFeedbackService(store FeedbackStore, logger *zap.Logger) (*FeedbackService, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	return &FeedbackService{
		store:   store,
		entries: entries,
		logger:  logger,
	}, nil
}

// Submit appends one entry and rewrites the persisted file. Blank text fails
// with ErrEmptyFeedback and changes nothing, in memory or on disk.
func (s *FeedbackService) Submit(text string, rating int) (models.FeedbackEntry, error) {
	if strings.TrimSpace(text) == "" {
		return models.FeedbackEntry{}, ErrEmptyFeedback
	}

	entry := models.FeedbackEntry{Text: sanitizeUTF8(text), Rating: rating}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.FeedbackEntry, len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	next = append(next, entry)

	if err := s.store.Save(next); err != nil {
		return models.FeedbackEntry{}, fmt.Errorf("failed to persist feedback: %w", err)
	}
	s.entries = next

	s.logger.Info("Feedback recorded",
		zap.Int("rating", rating),
		zap.Int("total", len(next)),
	)
	return entry, nil
}

// Entries returns the stored sequence in submission order.
func (s *FeedbackService) Entries() []models.FeedbackEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FeedbackEntry(nil), s.entries...)
}

// Count returns the number of stored entries.
func (s *FeedbackService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Export serializes the current sequence exactly as the persisted file,
// independent of disk state.
func (s *FeedbackService) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return repository.MarshalFeedback(s.entries)
}
