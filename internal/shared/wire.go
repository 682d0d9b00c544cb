package shared

// BulkRequest names a per-entity transition to apply to a set of ids.
type BulkRequest struct {
	Operation string   `json:"operation" validate:"required"`
	IDs       []string `json:"ids" validate:"required,min=1"`
	Reason    string   `json:"reason,omitempty"`
}

// BulkResult reports the outcome of a bulk mutation. AffectedCount counts
// only records that existed and were mutated; unknown ids are skipped
// silently so a partial miss never fails the whole batch.
type BulkResult struct {
	Success       bool     `json:"success"`
	AffectedCount int      `json:"affected_count"`
	Errors        []string `json:"errors,omitempty"`
}

// DeleteResult is the wire shape of a delete acknowledgement.
type DeleteResult struct {
	Success bool `json:"success"`
}
