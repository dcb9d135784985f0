package graphql

import (
	"context"

	"warehouse.GO/service/records"
)

type contextKey string

const ctxKeyRecords contextKey = "records"

// WithRecords attaches the record set so extension resolvers can reach it.
func WithRecords(ctx context.Context, set *records.Set) context.Context {
	return context.WithValue(ctx, ctxKeyRecords, set)
}

// RecordsFromContext returns the record set attached by WithRecords, or nil.
func RecordsFromContext(ctx context.Context) *records.Set {
	set, _ := ctx.Value(ctxKeyRecords).(*records.Set)
	return set
}
