package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
)

func TestQuery_EqualFilter(t *testing.T) {
	s := New()
	s.Put("jobs", "a", map[string]any{"status": "open", "title": "One"})
	s.Put("jobs", "b", map[string]any{"status": "closed", "title": "Two"})

	records, err := s.Query(context.Background(), "jobs", store.Query{
		Filters: []store.Filter{{Field: "status", Op: store.OpEqual, Value: "open"}},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	title, _ := records[0].String("title")
	assert.Equal(t, "One", title)
}

func TestQuery_OrderAndLimit(t *testing.T) {
	s := New()
	s.Put("jobs", "a", map[string]any{"rank": 3.0})
	s.Put("jobs", "b", map[string]any{"rank": 1.0})
	s.Put("jobs", "c", map[string]any{"rank": 2.0})

	records, err := s.Query(context.Background(), "jobs", store.Query{
		OrderBy: &store.Order{Field: "rank", Direction: store.Descending},
		Limit:   2,
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	first, _ := records[0].Number("rank")
	second, _ := records[1].Number("rank")
	assert.Equal(t, 3.0, first)
	assert.Equal(t, 2.0, second)
}

func TestQuery_ArrayContains(t *testing.T) {
	s := New()
	s.Put("users", "a", map[string]any{"skills": []any{"Go", "SQL"}})
	s.Put("users", "b", map[string]any{"skills": []any{"Java"}})

	records, err := s.Query(context.Background(), "users", store.Query{
		Filters: []store.Filter{{Field: "skills", Op: store.OpContains, Value: "Go"}},
	})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestQuery_IDMergedIntoRecord(t *testing.T) {
	s := New()
	s.Put("jobs", "job-1", map[string]any{"title": "X"})

	records, err := s.Query(context.Background(), "jobs", store.Query{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	id, ok := records[0].String("id")
	require.True(t, ok)
	assert.Equal(t, "job-1", id)
}

func TestQuery_InjectedFailure(t *testing.T) {
	s := New()
	s.Put("jobs", "a", map[string]any{})
	s.FailCollection("jobs", store.KindPermissionDenied)

	_, err := s.Query(context.Background(), "jobs", store.Query{})
	require.Error(t, err)
	assert.Equal(t, store.KindPermissionDenied, store.KindOf(err))

	s.ClearFailure("jobs")
	_, err = s.Query(context.Background(), "jobs", store.Query{})
	assert.NoError(t, err)
}

func TestQuery_InvalidQueryRejected(t *testing.T) {
	s := New()
	_, err := s.Query(context.Background(), "jobs", store.Query{
		Filters: []store.Filter{{Field: "", Op: store.OpEqual}},
	})
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	s := New()
	s.Put("users", "u1", map[string]any{"naam": "Anna"})

	rec, err := s.Get(context.Background(), "users", "u1")
	require.NoError(t, err)
	name, _ := rec.String("naam")
	assert.Equal(t, "Anna", name)

	_, err = s.Get(context.Background(), "users", "ghost")
	require.Error(t, err)
	assert.True(t, store.IsNotFound(err))
}

func TestAdd_MintsIDs(t *testing.T) {
	s := New()
	id1 := s.Add("jobs", map[string]any{"title": "A"})
	id2 := s.Add("jobs", map[string]any{"title": "B"})
	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)

	records, err := s.Query(context.Background(), "jobs", store.Query{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
