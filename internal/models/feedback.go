package models

// FeedbackEntry is one submitted feedback item. Entries are append-only and
// keep their submission order; the persisted file mirrors the in-memory
// sequence after every successful submission.
type FeedbackEntry struct {
	Text   string
	Rating int
}
