// Package query implements the in-memory filter/sort/paginate engine shared
// by every entity store. It mirrors the live backend's listing contract: the
// same filter applied here and upstream must yield identically shaped pages.
package query

import "time"

// Filter is an immutable query description. The engine never mutates it.
type Filter struct {
	Page    int
	PerPage int

	// Search is a case-insensitive substring match over the schema's
	// searchable fields. Blank means no text filtering.
	Search string

	Predicates []Predicate

	// Sort names the field to order by; empty means input order.
	Sort     string
	SortDesc bool
}

// Predicate is one typed filter condition. Predicates AND-compose and are
// order-independent among themselves.
type Predicate interface {
	isPredicate()
}

// In keeps records whose field value is a member of Values. An empty Values
// slice is a no-op.
type In struct {
	Field  string
	Values []string
}

// Bool keeps records whose field strictly equals Value. A nil Value is a
// no-op.
type Bool struct {
	Field string
	Value *bool
}

// NumberRange keeps records whose field is numeric and within [Min, Max]
// inclusive on whichever bound is set. Non-numeric field values are excluded
// whenever a bound is set.
type NumberRange struct {
	Field string
	Min   *float64
	Max   *float64
}

// TimeRange keeps records whose field parses as a timestamp within
// [From, To] inclusive on whichever bound is set. Missing or unparseable
// values are excluded whenever a bound is set.
type TimeRange struct {
	Field string
	From  *time.Time
	To    *time.Time
}

func (In) isPredicate()          {}
func (Bool) isPredicate()        {}
func (NumberRange) isPredicate() {}
func (TimeRange) isPredicate()   {}

// Schema tells the engine how to read a record generically.
type Schema[T any] struct {
	// Search lists the fields consulted by free-text search.
	Search []string
	// Field returns the named field's value, or nil when absent.
	Field func(rec T, name string) any
}
