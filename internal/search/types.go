package search

// Request represents a semantic search request.
type Request struct {
	// Query is the free-text query. Required, non-empty.
	Query string `json:"query"`
	// CapsuleID optionally scopes results to a single capsule. Scope
	// overrides capsule visibility: a direct, owner-context query into a
	// private capsule still returns its items.
	CapsuleID string `json:"capsule_id,omitempty"`
}

// Result is one ranked item. Score is the raw cosine distance (lower is more
// similar); callers must not assume a bounded similarity scale.
type Result struct {
	ID          string  `json:"id"`
	CapsuleID   string  `json:"capsule_id"`
	TextContent string  `json:"text_content,omitempty"`
	MediaURL    string  `json:"media_url,omitempty"`
	Score       float64 `json:"score"`
}

// Response represents the response to a semantic search request.
type Response struct {
	Results []Result `json:"results"`
}
