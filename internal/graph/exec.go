package graph

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/rs/zerolog/log"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/pokeql/pokeql/internal/graph/model"
	"github.com/pokeql/pokeql/internal/pokemon"
)

//go:embed schema.graphqls
var sourceSchema string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: sourceSchema})

// Config configures the executable schema.
type Config struct {
	Resolvers ResolverRoot
}

type ResolverRoot interface {
	Query() QueryResolver
	Mutation() MutationResolver
	Subscription() SubscriptionResolver
}

type QueryResolver interface {
	AllPokemons(ctx context.Context) ([]*pokemon.Pokemon, error)
	Pokemons(ctx context.Context, typeArg *pokemon.Type, resistant *string, weaknesses *string) ([]*pokemon.Pokemon, error)
	Pokemon(ctx context.Context, name *string) (*pokemon.Pokemon, error)
	PokemonTypes(ctx context.Context) ([]string, error)
	Attacks(ctx context.Context) ([]*pokemon.Attack, error)
	Attack(ctx context.Context, name *string) (*pokemon.Attack, error)
	SearchPokemons(ctx context.Context, query string, limit *int) ([]*pokemon.Pokemon, error)
}

type MutationResolver interface {
	CreatePokemon(ctx context.Context, input *model.PokemonInput) (*pokemon.Pokemon, error)
	UpdatePokemon(ctx context.Context, id string, input *model.PokemonInput) (*pokemon.Pokemon, error)
}

type SubscriptionResolver interface {
	PokemonCreated(ctx context.Context) (<-chan *pokemon.Pokemon, error)
}

// NewExecutableSchema creates an ExecutableSchema from the ResolverRoot interface.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{
		schema:    parsedSchema,
		resolvers: cfg.Resolvers,
	}
}

type executableSchema struct {
	schema    *ast.Schema
	resolvers ResolverRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	return e.schema
}

// Complexity charges every field one point on top of its children; list fields
// that return whole collections are weighted by the store size they may return.
func (e *executableSchema) Complexity(ctx context.Context, typeName, field string, childComplexity int, rawArgs map[string]any) (int, bool) {
	switch typeName + "." + field {
	case "Query.AllPokemons", "Query.Pokemons", "Query.Attacks":
		return 10 * (childComplexity + 1), true
	case "Query.searchPokemons":
		limit := 10
		if n, ok := rawArgs["limit"]; ok {
			if v, err := coerceInt(n); err == nil && v > 0 {
				limit = v
			}
		}
		return limit * (childComplexity + 1), true
	case "Pokemon.evolutions":
		return 3 * (childComplexity + 1), true
	}
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)

	switch opCtx.Operation.Operation {
	case ast.Query:
		return e.once(opCtx, e.schema.Query)
	case ast.Mutation:
		if e.schema.Mutation == nil {
			return graphql.OneShot(graphql.ErrorResponse(ctx, "mutations are not supported"))
		}
		return e.once(opCtx, e.schema.Mutation)
	case ast.Subscription:
		if e.schema.Subscription == nil {
			return graphql.OneShot(graphql.ErrorResponse(ctx, "subscriptions are not supported"))
		}
		return e.subscribe(ctx, opCtx)
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}
}

// once executes a query or mutation selection set and yields a single response.
// Root fields run in document order, which gives mutations their serial semantics.
func (e *executableSchema) once(opCtx *graphql.OperationContext, root *ast.Definition) graphql.ResponseHandler {
	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		ec := &executionContext{opCtx: opCtx, executableSchema: e}
		data := ec.executeSelectionSet(ctx, nil, root, opCtx.Operation.SelectionSet, nil)
		return ec.response(data)
	}
}

func (e *executableSchema) subscribe(ctx context.Context, opCtx *graphql.OperationContext) graphql.ResponseHandler {
	fields := graphql.CollectFields(opCtx, opCtx.Operation.SelectionSet, []string{e.schema.Subscription.Name})
	if len(fields) != 1 {
		return graphql.OneShot(graphql.ErrorResponse(ctx, "subscriptions must select exactly one top level field"))
	}
	field := fields[0]

	var (
		stream <-chan *pokemon.Pokemon
		err    error
	)
	switch field.Name {
	case "pokemonCreated":
		stream, err = e.resolvers.Subscription().PokemonCreated(ctx)
	default:
		err = fmt.Errorf("unknown subscription field %q", field.Name)
	}
	if err != nil {
		ec := &executionContext{opCtx: opCtx, executableSchema: e}
		ec.addError(ast.Path{ast.PathName(field.Alias)}, field, err)
		return graphql.OneShot(&graphql.Response{Data: []byte("null"), Errors: ec.errors})
	}

	if field.Definition == nil {
		field.Definition = e.schema.Subscription.Fields.ForName(field.Name)
	}

	return func(ctx context.Context) *graphql.Response {
		select {
		case p, ok := <-stream:
			if !ok {
				return nil
			}
			ec := &executionContext{opCtx: opCtx, executableSchema: e}
			path := ast.Path{ast.PathName(field.Alias)}
			value := ec.completeValue(ctx, path, field.Definition.Type, field, p)
			if value == nil {
				return ec.response(nil)
			}
			out := newObject(1)
			out.add(field.Alias, value)
			return ec.response(out)
		case <-ctx.Done():
			return nil
		}
	}
}

// executionContext carries the per-response state: the operation being run and
// the errors collected while resolving it.
type executionContext struct {
	opCtx *graphql.OperationContext
	*executableSchema

	errors gqlerror.List
}

func (ec *executionContext) response(data graphql.Marshaler) *graphql.Response {
	if data == nil {
		data = graphql.Null
	}
	var buf bytes.Buffer
	data.MarshalGQL(&buf)
	return &graphql.Response{
		Data:   buf.Bytes(),
		Errors: ec.errors,
	}
}

func (ec *executionContext) addError(path ast.Path, field graphql.CollectedField, err error) {
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) {
		gqlErr = &gqlerror.Error{Err: err, Message: err.Error()}
	}
	if gqlErr.Path == nil {
		gqlErr.Path = path
	}
	if gqlErr.Locations == nil && field.Field != nil && field.Position != nil {
		gqlErr.Locations = []gqlerror.Location{{Line: field.Position.Line, Column: field.Position.Column}}
	}
	ec.errors = append(ec.errors, gqlErr)
}

// resolveField dispatches to the resolver for the object type being completed.
// Panics are turned into an "internal system error" on the field.
func (ec *executionContext) resolveField(ctx context.Context, obj *ast.Definition, field graphql.CollectedField, parent any) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("type", obj.Name).Str("field", field.Name).Msg("resolver panicked")
			res, err = nil, errors.New("internal system error")
		}
	}()

	switch obj.Name {
	case "Query":
		return ec.resolveQueryField(ctx, field)
	case "Mutation":
		return ec.resolveMutationField(ctx, field)
	case "Pokemon":
		return resolvePokemonField(field, parent.(*pokemon.Pokemon))
	case "Attacks":
		return resolveAttacksField(field, parent.(*pokemon.Attacks))
	case "Attack":
		return resolveAttackField(field, parent.(*pokemon.Attack))
	case "PhysicalSpecs":
		return resolvePhysicalSpecsField(field, parent.(*pokemon.PhysicalSpecs))
	case "EvolutionRequirements":
		return resolveEvolutionRequirementsField(field, parent.(*pokemon.EvolutionRequirements))
	case "__Schema":
		s, err := addressOf[introspection.Schema](parent)
		if err != nil {
			return nil, err
		}
		return ec.resolveSchemaIntrospection(field, s)
	case "__Type":
		t, err := addressOf[introspection.Type](parent)
		if err != nil {
			return nil, err
		}
		return ec.resolveTypeIntrospection(field, t)
	case "__Field":
		f, err := addressOf[introspection.Field](parent)
		if err != nil {
			return nil, err
		}
		return ec.resolveFieldIntrospection(field, f)
	case "__InputValue":
		v, err := addressOf[introspection.InputValue](parent)
		if err != nil {
			return nil, err
		}
		return ec.resolveInputValueIntrospection(field, v)
	case "__EnumValue":
		v, err := addressOf[introspection.EnumValue](parent)
		if err != nil {
			return nil, err
		}
		return ec.resolveEnumValueIntrospection(field, v)
	case "__Directive":
		d, err := addressOf[introspection.Directive](parent)
		if err != nil {
			return nil, err
		}
		return ec.resolveDirectiveIntrospection(field, d)
	}
	return nil, fmt.Errorf("no resolver for type %q", obj.Name)
}

func (ec *executionContext) args(field graphql.CollectedField) map[string]any {
	return field.ArgumentMap(ec.opCtx.Variables)
}

func (ec *executionContext) resolveQueryField(ctx context.Context, field graphql.CollectedField) (any, error) {
	q := ec.resolvers.Query()
	args := ec.args(field)

	switch field.Name {
	case "AllPokemons":
		return q.AllPokemons(ctx)
	case "Pokemons":
		typ, err := argType(args, "type")
		if err != nil {
			return nil, err
		}
		resistant, err := argString(args, "resistant")
		if err != nil {
			return nil, err
		}
		weaknesses, err := argString(args, "weaknesses")
		if err != nil {
			return nil, err
		}
		return q.Pokemons(ctx, typ, resistant, weaknesses)
	case "Pokemon":
		name, err := argString(args, "name")
		if err != nil {
			return nil, err
		}
		return q.Pokemon(ctx, name)
	case "PokemonTypes":
		return q.PokemonTypes(ctx)
	case "Attacks":
		return q.Attacks(ctx)
	case "Attack":
		name, err := argString(args, "name")
		if err != nil {
			return nil, err
		}
		return q.Attack(ctx, name)
	case "searchPokemons":
		query, err := argString(args, "query")
		if err != nil {
			return nil, err
		}
		if query == nil {
			return nil, errors.New("query is required")
		}
		limit, err := argInt(args, "limit")
		if err != nil {
			return nil, err
		}
		return q.SearchPokemons(ctx, *query, limit)
	case "__schema":
		if ec.opCtx.DisableIntrospection {
			return nil, errors.New("introspection disabled")
		}
		return introspection.WrapSchema(ec.schema), nil
	case "__type":
		if ec.opCtx.DisableIntrospection {
			return nil, errors.New("introspection disabled")
		}
		name, err := argString(args, "name")
		if err != nil || name == nil {
			return nil, err
		}
		return introspection.WrapTypeFromDef(ec.schema, ec.schema.Types[*name]), nil
	}
	return nil, fmt.Errorf("unknown field Query.%s", field.Name)
}

func (ec *executionContext) resolveMutationField(ctx context.Context, field graphql.CollectedField) (any, error) {
	m := ec.resolvers.Mutation()
	args := ec.args(field)

	input, err := argPokemonInput(args, "input")
	if err != nil {
		return nil, err
	}

	switch field.Name {
	case "createPokemon":
		return m.CreatePokemon(ctx, input)
	case "updatePokemon":
		id, err := argString(args, "id")
		if err != nil {
			return nil, err
		}
		if id == nil {
			return nil, errors.New("id is required")
		}
		return m.UpdatePokemon(ctx, *id, input)
	}
	return nil, fmt.Errorf("unknown field Mutation.%s", field.Name)
}
