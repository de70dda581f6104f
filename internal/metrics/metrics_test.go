package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/99designs/gqlgen/graphql"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func operationContext(name string, op ast.Operation, field string) context.Context {
	return graphql.WithOperationContext(context.Background(), &graphql.OperationContext{
		OperationName: name,
		Operation: &ast.OperationDefinition{
			Operation:    op,
			Name:         name,
			SelectionSet: ast.SelectionSet{&ast.Field{Alias: "alias", Name: field}},
		},
	})
}

func TestTracerCountsResponses(t *testing.T) {
	tracer := Tracer{}
	ctx := operationContext("TracerOK", ast.Query, "AllPokemons")

	resp := tracer.InterceptResponse(ctx, func(ctx context.Context) *graphql.Response {
		return &graphql.Response{Data: []byte(`{}`)}
	})
	if resp == nil {
		t.Fatal("InterceptResponse() returned nil")
	}

	if got := testutil.ToFloat64(operationsTotal.WithLabelValues("query", "AllPokemons")); got != 1 {
		t.Errorf("operations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(operationErrors.WithLabelValues("query", "AllPokemons")); got != 0 {
		t.Errorf("errors = %v, want 0", got)
	}
}

func TestTracerCountsErrors(t *testing.T) {
	tracer := Tracer{}
	ctx := operationContext("TracerFail", ast.Mutation, "createPokemon")

	tracer.InterceptResponse(ctx, func(ctx context.Context) *graphql.Response {
		return &graphql.Response{Errors: gqlerror.List{gqlerror.Errorf("boom")}}
	})

	if got := testutil.ToFloat64(operationErrors.WithLabelValues("mutation", "createPokemon")); got != 1 {
		t.Errorf("errors = %v, want 1", got)
	}
}

func TestTracerIgnoresEndOfStream(t *testing.T) {
	tracer := Tracer{}
	ctx := operationContext("TracerDone", ast.Subscription, "pokemonCreated")

	if resp := tracer.InterceptResponse(ctx, func(ctx context.Context) *graphql.Response { return nil }); resp != nil {
		t.Errorf("InterceptResponse() = %v, want nil", resp)
	}
	if got := testutil.ToFloat64(operationsTotal.WithLabelValues("subscription", "pokemonCreated")); got != 0 {
		t.Errorf("operations = %v, want 0", got)
	}
}

func TestTracerWithoutOperationContext(t *testing.T) {
	called := false
	Tracer{}.InterceptResponse(context.Background(), func(ctx context.Context) *graphql.Response {
		called = true
		return &graphql.Response{}
	})
	if !called {
		t.Error("next handler was not called")
	}
}

func TestRootField(t *testing.T) {
	fragment := &ast.FragmentDefinition{
		Name:         "dex",
		SelectionSet: ast.SelectionSet{&ast.Field{Name: "PokemonTypes"}},
	}

	tests := []struct {
		name string
		op   *ast.OperationDefinition
		want string
	}{
		{"nil operation", nil, "unknown"},
		{"empty selection", &ast.OperationDefinition{}, "unknown"},
		{"alias ignored", &ast.OperationDefinition{
			SelectionSet: ast.SelectionSet{&ast.Field{Alias: "everything", Name: "AllPokemons"}},
		}, "AllPokemons"},
		{"inline fragment", &ast.OperationDefinition{
			SelectionSet: ast.SelectionSet{&ast.InlineFragment{
				SelectionSet: ast.SelectionSet{&ast.Field{Name: "Attacks"}},
			}},
		}, "Attacks"},
		{"fragment spread", &ast.OperationDefinition{
			SelectionSet: ast.SelectionSet{&ast.FragmentSpread{Name: "dex", Definition: fragment}},
		}, "PokemonTypes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rootField(tt.op); got != tt.want {
				t.Errorf("rootField() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTracerIgnoresOperationName(t *testing.T) {
	tracer := Tracer{}
	for _, name := range []string{"ClientA", "ClientB", ""} {
		ctx := operationContext(name, ast.Query, "Attack")
		tracer.InterceptResponse(ctx, func(ctx context.Context) *graphql.Response {
			return &graphql.Response{Data: []byte(`{}`)}
		})
	}

	if got := testutil.ToFloat64(operationsTotal.WithLabelValues("query", "Attack")); got != 3 {
		t.Errorf("operations = %v, want 3", got)
	}
	if got := testutil.CollectAndCount(operationsTotal, "pokeql_graphql_operations_total"); got > 4 {
		t.Errorf("series count = %d, operation names must not add series", got)
	}
}

type fakeStats struct{ records, subs int }

func (f fakeStats) Len() int             { return f.records }
func (f fakeStats) SubscriberCount() int { return f.subs }

func TestStoreCollector(t *testing.T) {
	c := NewStoreCollector(fakeStats{records: 14, subs: 2})

	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	expected := `
# HELP pokeql_store_records Number of records in the store
# TYPE pokeql_store_records gauge
pokeql_store_records 14
# HELP pokeql_store_subscribers Number of active change subscriptions
# TYPE pokeql_store_subscribers gauge
pokeql_store_subscribers 2
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected)); err != nil {
		t.Error(err)
	}
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if got := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/ping", "200")); got != 2 {
		t.Errorf("/ping requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Errorf("unmatched requests = %v, want 1", got)
	}
}
