// Package memstore provides an in-memory store.Client used by tests and
// local tooling. It implements the same filter, ordering and limit semantics
// as the real backends and supports per-collection failure injection so the
// fallback paths can be exercised deterministically.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
)

// Store is an in-memory document store keyed by collection and document id.
type Store struct {
	mu       sync.RWMutex
	docs     map[string]map[string]map[string]any
	failures map[string]store.ErrorKind
}

// New returns an empty store.
func New() *Store {
	return &Store{
		docs:     make(map[string]map[string]map[string]any),
		failures: make(map[string]store.ErrorKind),
	}
}

// Put stores a document under the given id, replacing any existing one.
func (s *Store) Put(collection, id string, doc map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]map[string]any)
	}
	s.docs[collection][id] = doc
}

// Add stores a document under a freshly minted id and returns it.
func (s *Store) Add(collection string, doc map[string]any) string {
	id := uuid.NewString()
	s.Put(collection, id, doc)
	return id
}

// FailCollection makes every access to collection fail with the given kind
// until ClearFailure is called.
func (s *Store) FailCollection(collection string, kind store.ErrorKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[collection] = kind
}

// ClearFailure removes an injected failure.
func (s *Store) ClearFailure(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, collection)
}

func (s *Store) injected(collection string) *store.Error {
	if kind, ok := s.failures[collection]; ok {
		return store.NewError(kind, collection, fmt.Sprintf("injected %s", kind))
	}
	return nil
}

// Query implements store.Client.
func (s *Store) Query(ctx context.Context, collection string, q store.Query) ([]record.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewError(store.KindUnavailable, collection, err.Error())
	}
	if err := q.Validate(); err != nil {
		return nil, store.NewError(store.KindUnavailable, collection, err.Error())
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.injected(collection); err != nil {
		return nil, err
	}

	var matched []map[string]any
	for id, doc := range s.docs[collection] {
		if matchesAll(doc, q.Filters) {
			matched = append(matched, withID(doc, id))
		}
	}

	if q.OrderBy != nil {
		field, desc := q.OrderBy.Field, q.OrderBy.Direction == store.Descending
		sort.SliceStable(matched, func(i, j int) bool {
			less := compareValues(matched[i][field], matched[j][field]) < 0
			if desc {
				return !less
			}
			return less
		})
	} else {
		// Stable output for tests: order by document id.
		sort.SliceStable(matched, func(i, j int) bool {
			a, _ := matched[i]["id"].(string)
			b, _ := matched[j]["id"].(string)
			return a < b
		})
	}

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	records := make([]record.RawRecord, 0, len(matched))
	for _, doc := range matched {
		records = append(records, record.FromMap(doc))
	}
	return records, nil
}

// Get implements store.Client.
func (s *Store) Get(ctx context.Context, collection, id string) (record.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return record.RawRecord{}, store.NewError(store.KindUnavailable, collection, err.Error())
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.injected(collection); err != nil {
		return record.RawRecord{}, err
	}
	doc, ok := s.docs[collection][id]
	if !ok {
		return record.RawRecord{}, store.NewError(store.KindNotFound, collection, fmt.Sprintf("document %s not found", id))
	}
	return record.FromMap(withID(doc, id)), nil
}

// withID copies the document with the store id merged in, leaving the stored
// map untouched.
func withID(doc map[string]any, id string) map[string]any {
	out := make(map[string]any, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	if _, ok := out["id"]; !ok {
		out["id"] = id
	}
	return out
}

func matchesAll(doc map[string]any, filters []store.Filter) bool {
	for _, f := range filters {
		if !matches(doc[f.Field], f) {
			return false
		}
	}
	return true
}

func matches(value any, f store.Filter) bool {
	switch f.Op {
	case store.OpEqual:
		return compareValues(value, f.Value) == 0
	case store.OpNotEqual:
		return compareValues(value, f.Value) != 0
	case store.OpGreater:
		return compareValues(value, f.Value) > 0
	case store.OpLess:
		return compareValues(value, f.Value) < 0
	case store.OpContains:
		arr, ok := value.([]any)
		if !ok {
			return false
		}
		for _, item := range arr {
			if compareValues(item, f.Value) == 0 {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// compareValues orders two scalar values, numbers before strings, absent
// values last.
func compareValues(a, b any) int {
	an, aIsNum := toFloat(a)
	bn, bIsNum := toFloat(b)
	switch {
	case aIsNum && bIsNum:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	case aIsNum:
		return -1
	case bIsNum:
		return 1
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	switch {
	case aIsStr && bIsStr:
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		default:
			return 0
		}
	case aIsStr:
		return -1
	case bIsStr:
		return 1
	default:
		return 0
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
