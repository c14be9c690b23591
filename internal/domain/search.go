package domain

// SearchRequest carries one ad-hoc index query. Query is opaque to this
// layer and is forwarded to the remote index unmodified.
type SearchRequest struct {
	Query map[string]any
	Index string
	Skip  int
	Take  int
}

type SearchHit struct {
	ID        string
	Index     string
	Score     float64
	Source    map[string]any
	Type      string
	InnerHits map[string]any
}

type SearchResult struct {
	Hits  []SearchHit
	Total int
}
