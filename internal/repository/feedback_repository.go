package repository

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"budgetboard/internal/models"

	"go.uber.org/zap"
)

// Column headers of the persisted feedback file.
const (
	feedbackHeaderText   = "Feedback"
	feedbackHeaderRating = "Rating"
)

// FeedbackRepository persists the feedback sequence as a small CSV file. The
// whole file is rewritten on every save; there is no atomicity guarantee
// beyond that.
type FeedbackRepository struct {
	path   string
	logger *zap.Logger
}

// NewFeedbackRepository creates the file-backed persistence boundary for
// feedback entries.
func NewFeedbackRepository(path string, logger *zap.Logger) *FeedbackRepository {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Warn("Failed to create feedback directory", zap.Error(err))
		}
	}
	return &FeedbackRepository{path: path, logger: logger}
}

// Load reads the persisted entries. A missing or empty file yields an empty
// sequence; an unreadable one is an error for the caller to treat as fatal.
func (r *FeedbackRepository) Load() ([]models.FeedbackEntry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read feedback file %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	entries, err := UnmarshalFeedback(data)
	if err != nil {
		return nil, fmt.Errorf("feedback file %s: %w", r.path, err)
	}

	r.logger.Info("Feedback loaded",
		zap.String("path", r.path),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}

// Save rewrites the whole file with the given sequence.
func (r *FeedbackRepository) Save(entries []models.FeedbackEntry) error {
	data, err := MarshalFeedback(entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write feedback file %s: %w", r.path, err)
	}
	return nil
}

// MarshalFeedback serializes entries in the persisted format: a
// Feedback,Rating header followed by one CSV row per entry. The download
// endpoint serves exactly these bytes.
func MarshalFeedback(entries []models.FeedbackEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{feedbackHeaderText, feedbackHeaderRating}); err != nil {
		return nil, fmt.Errorf("failed to serialize feedback: %w", err)
	}
	for _, entry := range entries {
		if err := w.Write([]string{entry.Text, strconv.Itoa(entry.Rating)}); err != nil {
			return nil, fmt.Errorf("failed to serialize feedback: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to serialize feedback: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalFeedback parses the persisted format back into entries.
func UnmarshalFeedback(data []byte) ([]models.FeedbackEntry, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed feedback data: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if len(records[0]) < 2 || records[0][0] != feedbackHeaderText || records[0][1] != feedbackHeaderRating {
		return nil, fmt.Errorf("unexpected feedback header %v", records[0])
	}

	entries := make([]models.FeedbackEntry, 0, len(records)-1)
	for n, record := range records[1:] {
		rating, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid rating %q", n+2, record[1])
		}
		entries = append(entries, models.FeedbackEntry{Text: record[0], Rating: rating})
	}
	return entries, nil
}
