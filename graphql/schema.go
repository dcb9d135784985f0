package graphql

import _ "embed"

// Schema is the read-only query schema served at /graphql.
//
//go:embed schema.graphqls
var Schema string

// ListArgs are the arguments shared by the list queries (defaults in schema: pageSize=20, currentPage=1).
type ListArgs struct {
	Search      *string
	PageSize    int32
	CurrentPage int32
}

// OutboundArgs adds a status filter to ListArgs.
type OutboundArgs struct {
	Search      *string
	Status      *string
	PageSize    int32
	CurrentPage int32
}

// ExtensionArgs for _extension(name, args). Args is a JSON object.
type ExtensionArgs struct {
	Name string
	Args *string
}
