package jira

// SearchResponse is the body of GET /rest/api/2/search.
type SearchResponse struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// Issue is one issue of a search response.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

type IssueFields struct {
	Summary string `json:"summary"`
	Status  struct {
		Name string `json:"name"`
	} `json:"status"`
	Updated string `json:"updated"`
}

// WorklogRequest is the body of POST /rest/api/2/issue/{key}/worklog.
type WorklogRequest struct {
	Started   string `json:"started"`
	TimeSpent string `json:"timeSpent"`
}
