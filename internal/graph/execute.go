package graph

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/executor"
	"github.com/99designs/gqlgen/graphql/handler/extension"
)

// NewExecutor builds an in-process executor over the schema, with introspection
// enabled. It serves the CLI and tests; the HTTP server builds its own handler.
func NewExecutor(r *Resolver) *executor.Executor {
	exec := executor.New(NewExecutableSchema(Config{Resolvers: r}))
	exec.Use(extension.Introspection{})
	return exec
}

// Run executes a single query or mutation. Parse and validation failures come
// back as response errors with no data.
func Run(ctx context.Context, exec *executor.Executor, params *graphql.RawParams) *graphql.Response {
	ctx = graphql.StartOperationTrace(ctx)

	opCtx, errs := exec.CreateOperationContext(ctx, params)
	if errs != nil {
		return &graphql.Response{Errors: errs}
	}

	ctx = graphql.WithOperationContext(ctx, opCtx)
	handler, ctx := exec.DispatchOperation(ctx, opCtx)
	return handler(ctx)
}
