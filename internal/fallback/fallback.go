// Package fallback implements the ordered-candidate query strategy the
// dashboard uses against independently evolved collections. Most deployments
// only populate one of several legacy collection names for a given entity
// set; trying candidates in declared order until one yields data is the
// normal path here, not the exception.
package fallback

import (
	"context"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/types"
)

// Candidate is one (collection, query) pair in a fallback chain.
type Candidate struct {
	Collection string
	Query      store.Query
}

// Result is a satisfied fetch: the normalized items plus the collection that
// produced them. Source is provenance only; it carries no semantics beyond
// diagnostics.
type Result[T any] struct {
	Items  []T
	Source string
}

// Fetch tries candidates strictly in declared order. Candidate order is part
// of the observable contract: it decides which legacy schema wins.
//
//   - PermissionDenied and Unavailable move on to the next candidate.
//   - A successful non-empty result returns immediately; every record is
//     normalized with norm, and a record norm rejects is dropped alone.
//   - Context cancellation abandons the remaining candidates and reports a
//     cancelled SourceFailure rather than partial data.
//   - When every candidate failed or came back empty, the SourceFailure
//     records each attempted collection and, if any, the last store error.
//     Callers must treat that as non-fatal: it covers both "legitimately no
//     data" and "exhausted fallbacks".
//
// No retries happen per candidate; retry/backoff is the store client's
// concern.
func Fetch[T any](ctx context.Context, client store.Client, entitySet string, candidates []Candidate, norm func(record.RawRecord) (T, error)) (*Result[T], *types.SourceFailure) {
	attempted := make([]string, 0, len(candidates))
	var lastErr error

	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, &types.SourceFailure{
				EntitySet: entitySet,
				Kind:      types.FailureCancelled,
				Attempted: attempted,
				LastError: err.Error(),
			}
		}
		attempted = append(attempted, cand.Collection)

		records, err := client.Query(ctx, cand.Collection, cand.Query)
		if err != nil {
			if ctx.Err() != nil {
				return nil, &types.SourceFailure{
					EntitySet: entitySet,
					Kind:      types.FailureCancelled,
					Attempted: attempted,
					LastError: ctx.Err().Error(),
				}
			}
			// PermissionDenied, Unavailable and anything else a driver maps
			// badly all fall through to the next candidate.
			lastErr = err
			continue
		}
		if len(records) == 0 {
			continue
		}

		items := make([]T, 0, len(records))
		for _, rec := range records {
			item, err := norm(rec)
			if err != nil {
				// Malformed record: drop it, keep its siblings.
				continue
			}
			items = append(items, item)
		}
		if len(items) == 0 {
			continue
		}
		return &Result[T]{Items: items, Source: cand.Collection}, nil
	}

	failure := &types.SourceFailure{
		EntitySet: entitySet,
		Kind:      types.FailureExhausted,
		Attempted: attempted,
	}
	if lastErr != nil {
		failure.LastError = lastErr.Error()
		switch store.KindOf(lastErr) {
		case store.KindPermissionDenied:
			failure.Kind = types.FailurePermissionDenied
		case store.KindUnavailable:
			failure.Kind = types.FailureUnavailable
		}
	}
	return nil, failure
}

// Get tries each collection in order for a single document id. NotFound moves
// to the next collection; the first hit wins. Used for account lookups and
// favorite enrichment where the referencing record does not say which legacy
// collection holds the target.
func Get(ctx context.Context, client store.Client, collections []string, id string) (record.RawRecord, string, error) {
	var lastErr error
	for _, collection := range collections {
		if err := ctx.Err(); err != nil {
			return record.RawRecord{}, "", err
		}
		rec, err := client.Get(ctx, collection, id)
		if err != nil {
			if store.IsNotFound(err) || store.IsFallthrough(err) {
				lastErr = err
				continue
			}
			return record.RawRecord{}, "", err
		}
		return rec, collection, nil
	}
	if lastErr == nil {
		lastErr = store.NewError(store.KindNotFound, "", "document "+id+" not found in any collection")
	}
	return record.RawRecord{}, "", lastErr
}
