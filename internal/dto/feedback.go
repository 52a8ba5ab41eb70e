package dto

// SubmitFeedbackRequest is the feedback form payload.
type SubmitFeedbackRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// FeedbackResponse is one stored feedback entry.
type FeedbackResponse struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}
