package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"warehouse.GO/graphql"
	"warehouse.GO/graphql/resolvers"
	"warehouse.GO/service/dashboard"
	"warehouse.GO/service/records"
)

// NewSchema parses the schema and binds it to the record set and dashboard.
func NewSchema(set *records.Set, dash *dashboard.Service) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema, resolvers.NewQueryResolver(set, dash), gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
