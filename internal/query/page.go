package query

// Page is the paginated listing shape produced by both the live backend and
// the in-memory engine. The JSON field names are part of the wire contract.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}
