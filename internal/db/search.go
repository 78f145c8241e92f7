package db

// TagFilter is an exact-match condition on a TAG field.
type TagFilter struct {
	Field string
	Value string
}

// Query is the input for an equality-filtered FT.SEARCH.
// An empty Filters list matches every document in the index.
type Query struct {
	IndexName string
	Filters   []TagFilter
	SortBy    string // NUMERIC SORTABLE field; empty means index order
	SortDesc  bool
	Offset    int
	Limit     int // 0 means DefaultQueryLimit
}

// DefaultQueryLimit caps a single FT.SEARCH page when Query.Limit is zero.
const DefaultQueryLimit = 10000

// IsCompound reports whether the query needs more than a single-field lookup.
func (q *Query) IsCompound() bool {
	return len(q.Filters) > 1 || q.SortBy != ""
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
