package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/planflow/plan-engine/pkg/models"
	"github.com/planflow/plan-engine/pkg/services"
)

func newMutationRoot(t *schemaTypes, svcs Services) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createAgent": &graphql.Field{
				Type: t.agent,
				Args: graphql.FieldConfigArgument{
					"name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":     &graphql.ArgumentConfig{Type: graphql.String},
					"agentType": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.agentType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, err := stringArg(p, "name")
					if err != nil {
						return nil, err
					}
					agentType, ok := p.Args["agentType"].(models.AgentType)
					if !ok {
						return nil, fmt.Errorf("argument %q must be an AgentType", "agentType")
					}
					return svcs.Agents.Create(p.Context, services.NewAgent{
						Name:      name,
						Email:     stringPtrArg(p, "email"),
						AgentType: agentType,
					})
				},
			},
			"deleteAgent": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"uniqueName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					uniqueName, err := stringArg(p, "uniqueName")
					if err != nil {
						return nil, err
					}
					return svcs.Agents.DeleteByUniqueName(p.Context, uniqueName)
				},
			},
			"createLabel": &graphql.Field{
				Type: t.label,
				Args: graphql.FieldConfigArgument{
					"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"color":   &graphql.ArgumentConfig{Type: graphql.String},
					"agentId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, err := stringArg(p, "name")
					if err != nil {
						return nil, err
					}
					return svcs.Labels.Create(p.Context, services.NewLabel{
						Name:    name,
						Color:   stringPtrArg(p, "color"),
						AgentID: stringPtrArg(p, "agentId"),
					})
				},
			},
			"deleteLabel": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					return svcs.Labels.Delete(p.Context, id)
				},
			},
			"createPlan": &graphql.Field{
				Type: t.plan,
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"agentId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					title, err := stringArg(p, "title")
					if err != nil {
						return nil, err
					}
					agentID, err := stringArg(p, "agentId")
					if err != nil {
						return nil, err
					}
					return svcs.Plans.Create(p.Context, services.NewPlan{
						Title:       title,
						Description: stringPtrArg(p, "description"),
						AgentID:     agentID,
					})
				},
			},
			"updatePlan": &graphql.Field{
				Type: t.plan,
				Args: graphql.FieldConfigArgument{
					"planId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					planID, err := stringArg(p, "planId")
					if err != nil {
						return nil, err
					}
					title, err := stringArg(p, "title")
					if err != nil {
						return nil, err
					}
					return svcs.Plans.Update(p.Context, services.PlanUpdate{
						ID:          planID,
						Title:       title,
						Description: stringPtrArg(p, "description"),
					})
				},
			},
			"createProcess": &graphql.Field{
				Type: t.process,
				Args: graphql.FieldConfigArgument{
					"planId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"startAt":     &graphql.ArgumentConfig{Type: graphql.DateTime},
					"dueAt":       &graphql.ArgumentConfig{Type: graphql.DateTime},
					"labelIds":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
					"agentIds":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					planID, err := stringArg(p, "planId")
					if err != nil {
						return nil, err
					}
					title, err := stringArg(p, "title")
					if err != nil {
						return nil, err
					}
					return svcs.Processes.Create(p.Context, services.NewProcess{
						Title:       title,
						Description: stringPtrArg(p, "description"),
						PlanID:      planID,
						StartAt:     timePtrArg(p, "startAt"),
						DueAt:       timePtrArg(p, "dueAt"),
						LabelIDs:    stringListArg(p, "labelIds"),
						AgentIDs:    stringListArg(p, "agentIds"),
					})
				},
			},
			"updateProcess": &graphql.Field{
				Type: t.process,
				Args: graphql.FieldConfigArgument{
					"processId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"labelIds":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
					"agentIds":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					processID, err := stringArg(p, "processId")
					if err != nil {
						return nil, err
					}
					title, err := stringArg(p, "title")
					if err != nil {
						return nil, err
					}
					return svcs.Processes.Update(p.Context, services.ProcessUpdate{
						ID:          processID,
						Title:       title,
						Description: stringPtrArg(p, "description"),
						LabelIDs:    stringListArg(p, "labelIds"),
						AgentIDs:    stringListArg(p, "agentIds"),
					})
				},
			},
			"deleteProcess": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"processId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					processID, err := stringArg(p, "processId")
					if err != nil {
						return nil, err
					}
					return svcs.Processes.Delete(p.Context, processID)
				},
			},
			"createResourceSpecification": &graphql.Field{
				Type: t.resourceSpecification,
				Args: graphql.FieldConfigArgument{
					"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"agentId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, err := stringArg(p, "name")
					if err != nil {
						return nil, err
					}
					return svcs.ResourceSpecifications.Create(p.Context, services.NewResourceSpecification{
						Name:    name,
						AgentID: stringPtrArg(p, "agentId"),
					})
				},
			},
			"deleteResourceSpecification": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"uniqueName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					uniqueName, err := stringArg(p, "uniqueName")
					if err != nil {
						return nil, err
					}
					return svcs.ResourceSpecifications.DeleteByUniqueName(p.Context, uniqueName)
				},
			},
			"createCommitment": &graphql.Field{
				Type: t.commitment,
				Args: graphql.FieldConfigArgument{
					"processId":               &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"description":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"actionId":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"assignedAgentId":         &graphql.ArgumentConfig{Type: graphql.ID},
					"quantity":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"unitId":                  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"resourceSpecificationId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"dueAt":                   &graphql.ArgumentConfig{Type: graphql.DateTime},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					processID, err := stringArg(p, "processId")
					if err != nil {
						return nil, err
					}
					description, err := stringArg(p, "description")
					if err != nil {
						return nil, err
					}
					actionID, err := stringArg(p, "actionId")
					if err != nil {
						return nil, err
					}
					quantity, err := intArg(p, "quantity")
					if err != nil {
						return nil, err
					}
					unitID, err := stringArg(p, "unitId")
					if err != nil {
						return nil, err
					}
					specID, err := stringArg(p, "resourceSpecificationId")
					if err != nil {
						return nil, err
					}
					return svcs.Commitments.Create(p.Context, services.NewCommitment{
						Description:             description,
						ProcessID:               processID,
						ActionID:                actionID,
						AssignedAgentID:         stringPtrArg(p, "assignedAgentId"),
						Quantity:                quantity,
						UnitID:                  unitID,
						ResourceSpecificationID: specID,
						DueAt:                   timePtrArg(p, "dueAt"),
					})
				},
			},
			"updateCommitment": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"id":                      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"description":             &graphql.ArgumentConfig{Type: graphql.String},
					"actionId":                &graphql.ArgumentConfig{Type: graphql.ID},
					"quantity":                &graphql.ArgumentConfig{Type: graphql.Int},
					"unitId":                  &graphql.ArgumentConfig{Type: graphql.ID},
					"resourceSpecificationId": &graphql.ArgumentConfig{Type: graphql.ID},
					"assignedAgentId":         &graphql.ArgumentConfig{Type: graphql.ID},
					"dueAt":                   &graphql.ArgumentConfig{Type: graphql.DateTime},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					return svcs.Commitments.Update(p.Context, services.CommitmentPatch{
						ID:                      id,
						Description:             stringPtrArg(p, "description"),
						ActionID:                stringPtrArg(p, "actionId"),
						Quantity:                intPtrArg(p, "quantity"),
						UnitID:                  stringPtrArg(p, "unitId"),
						ResourceSpecificationID: stringPtrArg(p, "resourceSpecificationId"),
						AssignedAgentID:         stringPtrArg(p, "assignedAgentId"),
						DueAt:                   timePtrArg(p, "dueAt"),
					})
				},
			},
			"deleteCommitment": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					return svcs.Commitments.Delete(p.Context, id)
				},
			},
			"createRelationship": &graphql.Field{
				Type: t.agentRelationship,
				Args: graphql.FieldConfigArgument{
					"subjectId":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"objectId":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"agentRelationTypeId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					subjectID, err := stringArg(p, "subjectId")
					if err != nil {
						return nil, err
					}
					objectID, err := stringArg(p, "objectId")
					if err != nil {
						return nil, err
					}
					typeID, err := stringArg(p, "agentRelationTypeId")
					if err != nil {
						return nil, err
					}
					return svcs.Agents.CreateRelationship(p.Context, services.NewRelationship{
						SubjectID:           subjectID,
						ObjectID:            objectID,
						AgentRelationTypeID: typeID,
					})
				},
			},
			"deleteRelationship": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					return svcs.Agents.DeleteRelationship(p.Context, id)
				},
			},
		},
	})
}
