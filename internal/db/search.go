package db

import "github.com/saintgiong/discovery/internal/domain/search"

// SearchQuery is the input for a structured index search.
type SearchQuery struct {
	IndexName    string
	Query        search.Query
	Offset       int
	Limit        int
	ReturnFields []string
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

// StreamMessage is a single entry read from an event stream.
type StreamMessage struct {
	Stream string
	ID     string
	Values map[string]string
}
