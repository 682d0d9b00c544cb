// Package fallback centralizes the fail-open policy shared by every entity
// client: try the live backend, and on any transport failure serve the
// equivalent result from the local store instead of propagating the error.
package fallback

import (
	"context"
	"log/slog"
)

// Policy carries the dependencies the fallback wrapper needs. One Policy is
// shared across all entity clients so the logging is uniform.
type Policy struct {
	logger *slog.Logger
}

// NewPolicy builds a Policy logging through logger.
func NewPolicy(logger *slog.Logger) *Policy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Policy{logger: logger}
}

// Run invokes live and returns its result on success. On any live error
// (network failure, timeout, non-2xx status, malformed body) it logs a
// warning naming the entity and operation, then serves local instead. Errors
// raised by local (NotFound, Conflict) are real and propagate to the caller;
// the original transport error is intentionally discarded at that point.
//
// Caller-input validation must happen before Run: a MissingParameterError is
// never rescued by falling back.
func Run[R any](ctx context.Context, p *Policy, entity, op string, live, local func(context.Context) (R, error)) (R, error) {
	out, err := live(ctx)
	if err == nil {
		return out, nil
	}
	p.logger.Warn("live call failed, serving from local store",
		slog.String("entity", entity),
		slog.String("op", op),
		slog.Any("error", err),
	)
	return local(ctx)
}
