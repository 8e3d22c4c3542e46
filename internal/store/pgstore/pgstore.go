// Package pgstore implements store.Client on PostgreSQL, holding every
// collection in one documents table with a JSONB body. It exists so the
// reconciliation core has a real backend next to the in-memory double; the
// core itself never imports it.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
	"github.com/Chesron92/PitchPro-webapp-sub001/internal/store"
)

// Schema is the table the store expects.
const Schema = `
CREATE TABLE IF NOT EXISTS documents (
    collection TEXT NOT NULL,
    id         TEXT NOT NULL,
    data       JSONB NOT NULL DEFAULT '{}'::jsonb,
    PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_data_idx ON documents USING gin (data);
`

// Store is a PostgreSQL-backed document store.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string, logger *slog.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{pool: pool, logger: logger}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the documents table when it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

// Put stores a document, replacing any existing body. Used by seeding and
// tooling; the reconciliation core only reads.
func (s *Store) Put(ctx context.Context, collection, id string, doc map[string]any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO UPDATE SET data = $3`,
		collection, id, body,
	)
	if err != nil {
		return mapError(err, collection)
	}
	return nil
}

// Query implements store.Client.
func (s *Store) Query(ctx context.Context, collection string, q store.Query) ([]record.RawRecord, error) {
	if err := q.Validate(); err != nil {
		return nil, store.NewError(store.KindUnavailable, collection, err.Error())
	}

	sql, args, err := buildQuery(collection, q)
	if err != nil {
		return nil, store.NewError(store.KindUnavailable, collection, err.Error())
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, collection)
	}
	defer rows.Close()

	var records []record.RawRecord
	for rows.Next() {
		var id string
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			return nil, mapError(err, collection)
		}
		doc := make(map[string]any)
		if err := json.Unmarshal(body, &doc); err != nil {
			s.logger.Warn("skipping undecodable document", "collection", collection, "id", id, "error", err)
			continue
		}
		if _, ok := doc["id"]; !ok {
			doc["id"] = id
		}
		records = append(records, record.FromMap(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, collection)
	}
	return records, nil
}

// Get implements store.Client.
func (s *Store) Get(ctx context.Context, collection, id string) (record.RawRecord, error) {
	var body []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.RawRecord{}, store.NewError(store.KindNotFound, collection, fmt.Sprintf("document %s not found", id))
		}
		return record.RawRecord{}, mapError(err, collection)
	}
	doc := make(map[string]any)
	if err := json.Unmarshal(body, &doc); err != nil {
		return record.RawRecord{}, store.NewError(store.KindUnavailable, collection, fmt.Sprintf("undecodable document %s: %v", id, err))
	}
	if _, ok := doc["id"]; !ok {
		doc["id"] = id
	}
	return record.FromMap(doc), nil
}

// buildQuery renders one collection read as SQL over the JSONB body.
func buildQuery(collection string, q store.Query) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, data FROM documents WHERE collection = $1`)
	args := []any{collection}

	for _, f := range q.Filters {
		switch f.Op {
		case store.OpContains:
			element, err := json.Marshal([]any{f.Value})
			if err != nil {
				return "", nil, fmt.Errorf("unencodable filter value for %s: %w", f.Field, err)
			}
			args = append(args, f.Field, string(element))
			fmt.Fprintf(&sb, " AND data->$%d @> $%d::jsonb", len(args)-1, len(args))
		default:
			op, ok := sqlOp(f.Op)
			if !ok {
				return "", nil, fmt.Errorf("unsupported filter op %q", f.Op)
			}
			if n, isNum := numericValue(f.Value); isNum {
				args = append(args, f.Field, n)
				fmt.Fprintf(&sb, " AND (data->>$%d)::numeric %s $%d", len(args)-1, op, len(args))
			} else {
				args = append(args, f.Field, fmt.Sprintf("%v", f.Value))
				fmt.Fprintf(&sb, " AND data->>$%d %s $%d", len(args)-1, op, len(args))
			}
		}
	}

	if q.OrderBy != nil {
		dir := "ASC"
		if q.OrderBy.Direction == store.Descending {
			dir = "DESC"
		}
		args = append(args, q.OrderBy.Field)
		fmt.Fprintf(&sb, " ORDER BY data->>$%d %s", len(args), dir)
	}
	if q.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.Limit)
	}
	return sb.String(), args, nil
}

func sqlOp(op store.Op) (string, bool) {
	switch op {
	case store.OpEqual:
		return "=", true
	case store.OpNotEqual:
		return "<>", true
	case store.OpGreater:
		return ">", true
	case store.OpLess:
		return "<", true
	default:
		return "", false
	}
}

func numericValue(v any) (float64, bool) {
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

// mapError translates driver failures into the store taxonomy. Permission
// errors fall through to the next fallback candidate; everything transient
// maps to Unavailable.
func mapError(err error, collection string) *store.Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42501": // insufficient_privilege
			return &store.Error{Kind: store.KindPermissionDenied, Collection: collection, Message: pgErr.Message, Err: err}
		case "42P01": // undefined_table: legacy collection never provisioned
			return &store.Error{Kind: store.KindPermissionDenied, Collection: collection, Message: pgErr.Message, Err: err}
		}
	}
	return &store.Error{Kind: store.KindUnavailable, Collection: collection, Message: err.Error(), Err: err}
}
