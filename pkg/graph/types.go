package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/planflow/plan-engine/pkg/models"
)

// schemaTypes holds every output type the roots reference. Built once per
// schema so nothing leaks through package-level state.
type schemaTypes struct {
	agentType   *graphql.Enum
	inputOutput *graphql.Enum

	agent                 *graphql.Object
	agentRelationType     *graphql.Object
	agentRelationship     *graphql.Object
	label                 *graphql.Object
	action                *graphql.Object
	unit                  *graphql.Object
	resourceSpecification *graphql.Object
	commitment            *graphql.Object
	process               *graphql.Object
	plan                  *graphql.Object
}

func newSchemaTypes() *schemaTypes {
	t := &schemaTypes{}

	t.agentType = graphql.NewEnum(graphql.EnumConfig{
		Name: "AgentType",
		Values: graphql.EnumValueConfigMap{
			"INDIVIDUAL":   &graphql.EnumValueConfig{Value: models.AgentTypeIndividual},
			"ORGANIZATION": &graphql.EnumValueConfig{Value: models.AgentTypeOrganization},
			"PROJECT":      &graphql.EnumValueConfig{Value: models.AgentTypeProject},
		},
	})

	t.inputOutput = graphql.NewEnum(graphql.EnumConfig{
		Name: "InputOutput",
		Values: graphql.EnumValueConfigMap{
			"INPUT":  &graphql.EnumValueConfig{Value: models.InputOutputInput},
			"OUTPUT": &graphql.EnumValueConfig{Value: models.InputOutputOutput},
		},
	})

	t.agent = graphql.NewObject(graphql.ObjectConfig{
		Name: "Agent",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"uniqueName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":      &graphql.Field{Type: graphql.String},
			"agentType":  &graphql.Field{Type: graphql.NewNonNull(t.agentType)},
			"insertedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	t.agentRelationType = graphql.NewObject(graphql.ObjectConfig{
		Name: "AgentRelationType",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"insertedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	t.agentRelationship = graphql.NewObject(graphql.ObjectConfig{
		Name: "AgentRelationship",
		Fields: graphql.Fields{
			"id":                &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"subject":           &graphql.Field{Type: graphql.NewNonNull(t.agent)},
			"object":            &graphql.Field{Type: graphql.NewNonNull(t.agent)},
			"agentRelationType": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"insertedAt":        &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	t.label = graphql.NewObject(graphql.ObjectConfig{
		Name: "Label",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"uniqueName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"color":      &graphql.Field{Type: graphql.String},
			"insertedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	t.action = graphql.NewObject(graphql.ObjectConfig{
		Name: "Action",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"inputOutput": &graphql.Field{Type: graphql.NewNonNull(t.inputOutput)},
			"insertedAt":  &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	t.unit = graphql.NewObject(graphql.ObjectConfig{
		Name: "Unit",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"label":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"insertedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	t.resourceSpecification = graphql.NewObject(graphql.ObjectConfig{
		Name: "ResourceSpecification",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"uniqueName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"insertedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	t.commitment = graphql.NewObject(graphql.ObjectConfig{
		Name: "Commitment",
		Fields: graphql.Fields{
			"id":                    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"description":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"action":                &graphql.Field{Type: t.action},
			"assignedAgent":         &graphql.Field{Type: t.agent},
			"quantity":              &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"unit":                  &graphql.Field{Type: t.unit},
			"resourceSpecification": &graphql.Field{Type: t.resourceSpecification},
			"dueAt":                 &graphql.Field{Type: graphql.DateTime},
			"insertedAt":            &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	t.process = graphql.NewObject(graphql.ObjectConfig{
		Name: "Process",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"labels":      &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(t.label))},
			"agents":      &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(t.agent))},
			"commitments": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(t.commitment))},
			"startAt":     &graphql.Field{Type: graphql.DateTime},
			"dueAt":       &graphql.Field{Type: graphql.DateTime},
			"insertedAt":  &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	t.plan = graphql.NewObject(graphql.ObjectConfig{
		Name: "Plan",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"processes":   &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(t.process))},
			"insertedAt":  &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	return t
}
