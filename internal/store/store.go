package store

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/Chesron92/PitchPro-webapp-sub001/internal/record"
)

// Op is a filter comparison operator.
type Op string

const (
	// OpEqual matches documents whose field equals the value.
	OpEqual Op = "=="
	// OpNotEqual matches documents whose field differs from the value.
	OpNotEqual Op = "!="
	// OpGreater matches documents whose field is greater than the value.
	OpGreater Op = ">"
	// OpLess matches documents whose field is less than the value.
	OpLess Op = "<"
	// OpContains matches documents whose array field contains the value.
	OpContains Op = "array-contains"
)

// Filter is one field comparison applied server-side.
type Filter struct {
	Field string `validate:"required"`
	Op    Op     `validate:"required,oneof='==' '!=' '>' '<' 'array-contains'"`
	Value any
}

// Direction orders query results.
type Direction string

const (
	// Ascending sorts smallest first.
	Ascending Direction = "asc"
	// Descending sorts largest first.
	Descending Direction = "desc"
)

// Order is an optional ordering clause.
type Order struct {
	Field     string    `validate:"required"`
	Direction Direction `validate:"oneof=asc desc"`
}

// Query describes one collection read.
type Query struct {
	Filters []Filter `validate:"dive"`
	OrderBy *Order
	Limit   int `validate:"gte=0"`
}

var validate = validator.New()

// Validate checks the query for structurally invalid clauses before it
// reaches a driver.
func (q Query) Validate() error {
	if err := validate.Struct(q); err != nil {
		return err
	}
	if q.OrderBy != nil {
		return validate.Struct(*q.OrderBy)
	}
	return nil
}

// Client is the capability the reconciliation core consumes. Both calls fail
// with *Error; Get reports a missing document as KindNotFound rather than a
// nil record.
type Client interface {
	// Query returns the raw documents of collection matching q, each with
	// its document id merged in under "id" when the backing store keeps ids
	// outside the document body.
	Query(ctx context.Context, collection string, q Query) ([]record.RawRecord, error)
	// Get returns the single document of collection with the given id.
	Get(ctx context.Context, collection, id string) (record.RawRecord, error)
}
