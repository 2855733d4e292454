// Package graph defines the GraphQL schema and wires resolvers to the
// service layer. The schema is built by New and passed around as a value;
// resolvers close over the services they call.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/planflow/plan-engine/pkg/services"
)

// Services bundles the service layer the resolvers depend on.
type Services struct {
	Agents                 services.AgentService
	Plans                  services.PlanService
	Processes              services.ProcessService
	Commitments            services.CommitmentService
	Labels                 services.LabelService
	ResourceSpecifications services.ResourceSpecificationService
	Reference              services.ReferenceService
}

// New builds the executable schema.
func New(svcs Services) (graphql.Schema, error) {
	t := newSchemaTypes()
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    newQueryRoot(t, svcs),
		Mutation: newMutationRoot(t, svcs),
	})
}
