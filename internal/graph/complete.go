package graph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
)

// object is an ordered JSON object. Keys keep selection order in the response.
type object struct {
	keys   []string
	values []graphql.Marshaler
}

func newObject(size int) *object {
	return &object{
		keys:   make([]string, 0, size),
		values: make([]graphql.Marshaler, 0, size),
	}
}

func (o *object) add(key string, value graphql.Marshaler) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

func (o *object) MarshalGQL(w io.Writer) {
	io.WriteString(w, "{")
	for i, key := range o.keys {
		if i > 0 {
			io.WriteString(w, ",")
		}
		graphql.MarshalString(key).MarshalGQL(w)
		io.WriteString(w, ":")
		o.values[i].MarshalGQL(w)
	}
	io.WriteString(w, "}")
}

// executeSelectionSet resolves every collected field of obj against the selection
// set. It returns nil when a non-null field could not be completed, in which case
// the caller nulls out the nearest nullable parent.
func (ec *executionContext) executeSelectionSet(ctx context.Context, path ast.Path, def *ast.Definition, sel ast.SelectionSet, parent any) graphql.Marshaler {
	satisfies := append([]string{def.Name}, def.Interfaces...)
	fields := graphql.CollectFields(ec.opCtx, sel, satisfies)

	out := newObject(len(fields))
	for _, field := range fields {
		if field.Name == "__typename" {
			out.add(field.Alias, graphql.MarshalString(def.Name))
			continue
		}

		fieldPath := appendPath(path, ast.PathName(field.Alias))
		if field.Definition == nil {
			field.Definition = def.Fields.ForName(field.Name)
		}
		if field.Definition == nil {
			ec.addError(fieldPath, field, fmt.Errorf("cannot query field %q on type %q", field.Name, def.Name))
			out.add(field.Alias, graphql.Null)
			continue
		}

		value, err := ec.resolveField(ctx, def, field, parent)
		if err != nil {
			ec.addError(fieldPath, field, err)
			if field.Definition.Type.NonNull {
				return nil
			}
			out.add(field.Alias, graphql.Null)
			continue
		}

		completed := ec.completeValue(ctx, fieldPath, field.Definition.Type, field, value)
		if completed == nil {
			return nil
		}
		out.add(field.Alias, completed)
	}
	return out
}

// completeValue turns a resolved Go value into its response form according to
// typ. A nil return means typ is non-null and the value could not be produced.
func (ec *executionContext) completeValue(ctx context.Context, path ast.Path, typ *ast.Type, field graphql.CollectedField, value any) graphql.Marshaler {
	if isNil(value) {
		if typ.NonNull {
			ec.addError(path, field, errors.New("must not be null"))
			return nil
		}
		return graphql.Null
	}

	invalid := func() graphql.Marshaler {
		if typ.NonNull {
			return nil
		}
		return graphql.Null
	}

	if typ.Elem != nil {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			ec.addError(path, field, fmt.Errorf("expected a list, got %T", value))
			return invalid()
		}
		list := make(graphql.Array, rv.Len())
		for i := range list {
			item := ec.completeValue(ctx, appendPath(path, ast.PathIndex(i)), typ.Elem, field, rv.Index(i).Interface())
			if item == nil {
				return invalid()
			}
			list[i] = item
		}
		return list
	}

	def := ec.schema.Types[typ.NamedType]
	if def == nil {
		ec.addError(path, field, fmt.Errorf("unknown type %q", typ.NamedType))
		return invalid()
	}

	switch def.Kind {
	case ast.Scalar, ast.Enum:
		leaf, err := marshalLeaf(def, value)
		if err != nil {
			ec.addError(path, field, err)
			return invalid()
		}
		return leaf
	case ast.Object:
		obj := ec.executeSelectionSet(ctx, path, def, field.Selections, value)
		if obj == nil {
			return invalid()
		}
		return obj
	}

	ec.addError(path, field, fmt.Errorf("cannot complete %s type %q", def.Kind, def.Name))
	return invalid()
}

func marshalLeaf(def *ast.Definition, value any) (graphql.Marshaler, error) {
	rv := reflect.Indirect(reflect.ValueOf(value))

	if def.Kind == ast.Enum {
		if rv.Kind() != reflect.String {
			return nil, fmt.Errorf("%s: expected an enum string, got %T", def.Name, value)
		}
		s := rv.String()
		if def.EnumValues.ForName(s) == nil {
			return nil, fmt.Errorf("%q is not a valid %s", s, def.Name)
		}
		return graphql.MarshalString(s), nil
	}

	switch def.Name {
	case "String", "ID":
		if rv.Kind() != reflect.String {
			return nil, fmt.Errorf("%s: expected a string, got %T", def.Name, value)
		}
		if def.Name == "ID" {
			return graphql.MarshalID(rv.String()), nil
		}
		return graphql.MarshalString(rv.String()), nil
	case "Int":
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return graphql.MarshalInt(int(rv.Int())), nil
		}
		return nil, fmt.Errorf("Int: expected an integer, got %T", value)
	case "Float":
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return graphql.MarshalFloat(rv.Float()), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return graphql.MarshalFloat(float64(rv.Int())), nil
		}
		return nil, fmt.Errorf("Float: expected a number, got %T", value)
	case "Boolean":
		if rv.Kind() != reflect.Bool {
			return nil, fmt.Errorf("Boolean: expected a bool, got %T", value)
		}
		return graphql.MarshalBoolean(rv.Bool()), nil
	}
	return nil, fmt.Errorf("unsupported scalar %q", def.Name)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// appendPath returns a new path so sibling fields never share a backing array.
func appendPath(path ast.Path, elem ast.PathElement) ast.Path {
	next := make(ast.Path, len(path), len(path)+1)
	copy(next, path)
	return append(next, elem)
}
