package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"budgetboard/internal/models"
	"budgetboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFeedback(t *testing.T) (*FeedbackService, *repository.FeedbackRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedback.csv")
	repo := repository.NewFeedbackRepository(path, zap.NewNop())
	svc, err := NewFeedbackService(repo, zap.NewNop())
	require.NoError(t, err)
	return svc, repo, path
}

type fakeStore struct {
	entries []models.FeedbackEntry
	fail    bool
	saves   int
}

func (s *fakeStore) Load() ([]models.FeedbackEntry, error) { return s.entries, nil }

func (s *fakeStore) Save(entries []models.FeedbackEntry) error {
	s.saves++
	if s.fail {
		return errors.New("disk full")
	}
	s.entries = entries
	return nil
}

func TestFeedbackSubmitPersists(t *testing.T) {
	svc, repo, _ := newTestFeedback(t)

	_, err := svc.Submit("love the charts", 5)
	require.NoError(t, err)
	_, err = svc.Submit("needs dark mode", 3)
	require.NoError(t, err)

	assert.Equal(t, 2, svc.Count())

	// A fresh service sees what the first one persisted
	reloaded, err := NewFeedbackService(repo, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []models.FeedbackEntry{
		{Text: "love the charts", Rating: 5},
		{Text: "needs dark mode", Rating: 3},
	}, reloaded.Entries())
}

func TestFeedbackRejectsBlankText(t *testing.T) {
	svc, _, _ := newTestFeedback(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Submit(text, 4)
		assert.ErrorIs(t, err, ErrEmptyFeedback)
	}
	assert.Equal(t, 0, svc.Count())
}

func TestFeedbackBlankSubmitDoesNotTouchStore(t *testing.T) {
	store := &fakeStore{}
	svc, err := NewFeedbackService(store, zap.NewNop())
	require.NoError(t, err)

	_, err = svc.Submit("   ", 3)
	assert.ErrorIs(t, err, ErrEmptyFeedback)
	assert.Zero(t, store.saves)
}

func TestFeedbackSubmitKeepsStateOnSaveFailure(t *testing.T) {
	store := &fakeStore{fail: true}
	svc, err := NewFeedbackService(store, zap.NewNop())
	require.NoError(t, err)

	_, err = svc.Submit("will not stick", 2)
	require.Error(t, err)
	assert.Equal(t, 0, svc.Count())

	store.fail = false
	_, err = svc.Submit("sticks now", 4)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Count())
	assert.Equal(t, []models.FeedbackEntry{{Text: "sticks now", Rating: 4}}, svc.Entries())
}

func TestFeedbackExportMatchesPersistedFormat(t *testing.T) {
	svc, _, path := newTestFeedback(t)

	_, err := svc.Submit("solid tool", 4)
	require.NoError(t, err)

	exported, err := svc.Export()
	require.NoError(t, err)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, onDisk, exported)
	assert.Equal(t, "Feedback,Rating\nsolid tool,4\n", string(exported))
}

func TestFeedbackSanitizesInvalidUTF8(t *testing.T) {
	svc, _, _ := newTestFeedback(t)

	entry, err := svc.Submit("bad\xffbyte", 1)
	require.NoError(t, err)
	assert.Equal(t, "badbyte", entry.Text)
}

func TestFeedbackEntriesReturnsCopy(t *testing.T) {
	svc, _, _ := newTestFeedback(t)

	_, err := svc.Submit("original", 5)
	require.NoError(t, err)

	entries := svc.Entries()
	entries[0].Text = "mutated"

	assert.Equal(t, "original", svc.Entries()[0].Text)
}
