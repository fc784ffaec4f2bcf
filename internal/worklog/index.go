package worklog

import "jira-worklog/internal/model"

// Index resolves user facing names to issues. It is built fresh from a
// freshly fetched list for every operation.
type Index struct {
	ByKey     map[string]model.Issue
	BySummary map[string]model.Issue
}

// BuildIndex indexes issues by key and by summary. When summaries collide
// the issue fetched last wins.
func BuildIndex(issues []model.Issue) *Index {
	idx := &Index{
		ByKey:     make(map[string]model.Issue, len(issues)),
		BySummary: make(map[string]model.Issue, len(issues)),
	}
	for _, is := range issues {
		idx.ByKey[is.Key] = is
		idx.BySummary[is.Summary] = is
	}
	return idx
}

// Resolve finds the issue a draft refers to, by key when the draft carries
// one and by exact summary otherwise.
func (idx *Index) Resolve(d Draft) (model.Issue, bool) {
	if idx == nil {
		return model.Issue{}, false
	}
	if d.IssueKey != "" {
		is, ok := idx.ByKey[d.IssueKey]
		return is, ok
	}
	is, ok := idx.BySummary[d.Summary]
	return is, ok
}
