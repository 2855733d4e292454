package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/planflow/plan-engine/pkg/services"
)

func newQueryRoot(t *schemaTypes, svcs Services) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"agents": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.agent)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svcs.Agents.List(p.Context)
				},
			},
			"individuals": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.agent)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svcs.Agents.Individuals(p.Context)
				},
			},
			"organizations": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.agent)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svcs.Agents.Organizations(p.Context)
				},
			},
			"agentRelations": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.agentRelationship)),
				Args: graphql.FieldConfigArgument{
					"agentId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					agentID, err := stringArg(p, "agentId")
					if err != nil {
						return nil, err
					}
					return svcs.Agents.Relations(p.Context, agentID)
				},
			},
			"agentRelationTypes": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.agentRelationType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svcs.Agents.RelationTypes(p.Context)
				},
			},
			"plans": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.plan)),
				Args: graphql.FieldConfigArgument{
					"agentId":         &graphql.ArgumentConfig{Type: graphql.ID},
					"agentUniqueName": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svcs.Plans.ListForAgent(p.Context, services.PlanFilter{
						AgentID:         stringPtrArg(p, "agentId"),
						AgentUniqueName: stringPtrArg(p, "agentUniqueName"),
					})
				},
			},
			"plan": &graphql.Field{
				Type: t.plan,
				Args: graphql.FieldConfigArgument{
					"planId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					planID, err := stringArg(p, "planId")
					if err != nil {
						return nil, err
					}
					return svcs.Plans.Detail(p.Context, planID)
				},
			},
			"labels": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.label)),
				Args: graphql.FieldConfigArgument{
					"agentId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svcs.Labels.List(p.Context, stringPtrArg(p, "agentId"))
				},
			},
			"actions": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.action)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svcs.Reference.Actions(p.Context)
				},
			},
			"units": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.unit)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svcs.Reference.Units(p.Context)
				},
			},
			"resourceSpecifications": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.resourceSpecification)),
				Args: graphql.FieldConfigArgument{
					"agentUniqueName": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svcs.ResourceSpecifications.List(p.Context, stringPtrArg(p, "agentUniqueName"))
				},
			},
		},
	})
}
