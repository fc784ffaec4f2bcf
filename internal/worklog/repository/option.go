package repository

// SearchOptions holds the parameters for the assigned issues search.
type SearchOptions struct {
	MaxResults int // 0 means the client default (100)
}

// CreateWorklogOptions holds the parameters for creating a work log.
type CreateWorklogOptions struct {
	IssueKey  string // e.g. "PROJ-123"
	TimeSpent string // canonical duration text, e.g. "1h30m"
	Started   string // tracker timestamp, e.g. "2024-03-05T09:30:00.000+0000"
}
