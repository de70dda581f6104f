package graph

import (
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
)

// Introspection values come from gqlgen's introspection package. Its list
// accessors return values rather than pointers, so every dispatch below accepts
// both forms.

func (ec *executionContext) includeDeprecated(field graphql.CollectedField) (bool, error) {
	v, ok := ec.args(field)["includeDeprecated"]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("argument includeDeprecated: expected a bool, got %T", v)
	}
	return b, nil
}

func (ec *executionContext) resolveSchemaIntrospection(field graphql.CollectedField, s *introspection.Schema) (any, error) {
	switch field.Name {
	case "description":
		return s.Description(), nil
	case "types":
		return s.Types(), nil
	case "queryType":
		return s.QueryType(), nil
	case "mutationType":
		return s.MutationType(), nil
	case "subscriptionType":
		return s.SubscriptionType(), nil
	case "directives":
		return s.Directives(), nil
	}
	return nil, fmt.Errorf("unknown field __Schema.%s", field.Name)
}

func (ec *executionContext) resolveTypeIntrospection(field graphql.CollectedField, t *introspection.Type) (any, error) {
	switch field.Name {
	case "kind":
		return t.Kind(), nil
	case "name":
		return t.Name(), nil
	case "description":
		return t.Description(), nil
	case "specifiedByURL":
		return t.SpecifiedByURL(), nil
	case "isOneOf":
		return t.IsOneOf(), nil
	case "fields":
		withDeprecated, err := ec.includeDeprecated(field)
		if err != nil {
			return nil, err
		}
		return t.Fields(withDeprecated), nil
	case "interfaces":
		return t.Interfaces(), nil
	case "possibleTypes":
		return t.PossibleTypes(), nil
	case "enumValues":
		withDeprecated, err := ec.includeDeprecated(field)
		if err != nil {
			return nil, err
		}
		return t.EnumValues(withDeprecated), nil
	case "inputFields":
		return t.InputFields(), nil
	case "ofType":
		return t.OfType(), nil
	}
	return nil, fmt.Errorf("unknown field __Type.%s", field.Name)
}

func (ec *executionContext) resolveFieldIntrospection(field graphql.CollectedField, f *introspection.Field) (any, error) {
	switch field.Name {
	case "name":
		return f.Name, nil
	case "description":
		return f.Description(), nil
	case "args":
		// Fields without arguments carry a nil slice; args is a non-null list.
		if f.Args == nil {
			return []introspection.InputValue{}, nil
		}
		return f.Args, nil
	case "type":
		return f.Type, nil
	case "isDeprecated":
		return f.IsDeprecated(), nil
	case "deprecationReason":
		return f.DeprecationReason(), nil
	}
	return nil, fmt.Errorf("unknown field __Field.%s", field.Name)
}

func (ec *executionContext) resolveInputValueIntrospection(field graphql.CollectedField, v *introspection.InputValue) (any, error) {
	switch field.Name {
	case "name":
		return v.Name, nil
	case "description":
		return v.Description(), nil
	case "type":
		return v.Type, nil
	case "defaultValue":
		return v.DefaultValue, nil
	case "isDeprecated":
		return v.IsDeprecated(), nil
	case "deprecationReason":
		return v.DeprecationReason(), nil
	}
	return nil, fmt.Errorf("unknown field __InputValue.%s", field.Name)
}

func (ec *executionContext) resolveEnumValueIntrospection(field graphql.CollectedField, v *introspection.EnumValue) (any, error) {
	switch field.Name {
	case "name":
		return v.Name, nil
	case "description":
		return v.Description(), nil
	case "isDeprecated":
		return v.IsDeprecated(), nil
	case "deprecationReason":
		return v.DeprecationReason(), nil
	}
	return nil, fmt.Errorf("unknown field __EnumValue.%s", field.Name)
}

func (ec *executionContext) resolveDirectiveIntrospection(field graphql.CollectedField, d *introspection.Directive) (any, error) {
	switch field.Name {
	case "name":
		return d.Name, nil
	case "description":
		return d.Description(), nil
	case "isRepeatable":
		return d.IsRepeatable, nil
	case "locations":
		return d.Locations, nil
	case "args":
		if d.Args == nil {
			return []introspection.InputValue{}, nil
		}
		return d.Args, nil
	}
	return nil, fmt.Errorf("unknown field __Directive.%s", field.Name)
}

// addressOf returns a pointer to an introspection value whether it was
// resolved as a pointer or as a list element.
func addressOf[T any](parent any) (*T, error) {
	switch v := parent.(type) {
	case *T:
		return v, nil
	case T:
		return &v, nil
	}
	var zero T
	return nil, fmt.Errorf("expected %T, got %T", zero, parent)
}
