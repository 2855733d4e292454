package graph

import (
	"fmt"
	"time"

	"github.com/graphql-go/graphql"
)

// Argument extraction. Required arguments are enforced by NonNull in the
// schema; the accessors here still fail loudly on a type mismatch so a
// resolver never proceeds with a zero value it did not ask for.

func stringArg(p graphql.ResolveParams, name string) (string, error) {
	value, ok := p.Args[name].(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string", name)
	}
	return value, nil
}

func stringPtrArg(p graphql.ResolveParams, name string) *string {
	if value, ok := p.Args[name].(string); ok {
		return &value
	}
	return nil
}

func intArg(p graphql.ResolveParams, name string) (int, error) {
	value, ok := p.Args[name].(int)
	if !ok {
		return 0, fmt.Errorf("argument %q must be an integer", name)
	}
	return value, nil
}

func intPtrArg(p graphql.ResolveParams, name string) *int {
	if value, ok := p.Args[name].(int); ok {
		return &value
	}
	return nil
}

func timePtrArg(p graphql.ResolveParams, name string) *time.Time {
	if value, ok := p.Args[name].(time.Time); ok {
		return &value
	}
	return nil
}

func stringListArg(p graphql.ResolveParams, name string) []string {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
