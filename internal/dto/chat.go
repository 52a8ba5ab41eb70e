package dto

// ChatRequest is a free-text query plus the selection state it should be
// answered against (the same state the dashboard view uses).
type ChatRequest struct {
	Query       string   `json:"query"`
	Currency    string   `json:"currency"`
	Departments []string `json:"departments"`
	Vendors     []string `json:"vendors"`
	Search      string   `json:"search"`
}

// ChatResponse carries the responder's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
