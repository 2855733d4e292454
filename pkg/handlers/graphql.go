package handlers

import (
	"net/http"

	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
)

// GraphQLHandler serves the /graphql endpoint. POST executes queries and
// mutations; GET serves the interactive explorer.
type GraphQLHandler struct {
	handler *gqlhandler.Handler
}

// NewGraphQLHandler creates the endpoint handler for the given schema.
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{
		handler: gqlhandler.New(&gqlhandler.Config{
			Schema:     &schema,
			Pretty:     true,
			Playground: true,
		}),
	}
}

// RegisterRoutes registers the GraphQL endpoint on the given mux.
func (h *GraphQLHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/graphql", h.handler)
}
