// Package metrics exposes Prometheus collectors for the GraphQL server.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vektah/gqlparser/v2/ast"
)

// Metrics for GraphQL operations and HTTP traffic.
var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokeql_graphql_operations_total",
			Help: "Total number of GraphQL responses produced",
		},
		[]string{"operation", "field"},
	)

	operationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokeql_graphql_operation_errors_total",
			Help: "Total number of GraphQL responses carrying errors",
		},
		[]string{"operation", "field"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokeql_graphql_operation_duration_seconds",
			Help:    "GraphQL response duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "field"},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokeql_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// Tracer is a gqlgen handler extension that records per-operation metrics.
type Tracer struct{}

var _ interface {
	graphql.HandlerExtension
	graphql.ResponseInterceptor
} = Tracer{}

func (Tracer) ExtensionName() string {
	return "PrometheusTracer"
}

func (Tracer) Validate(graphql.ExecutableSchema) error {
	return nil
}

func (Tracer) InterceptResponse(ctx context.Context, next graphql.ResponseHandler) *graphql.Response {
	if !graphql.HasOperationContext(ctx) {
		return next(ctx)
	}

	opCtx := graphql.GetOperationContext(ctx)
	kind := "unknown"
	if opCtx.Operation != nil {
		kind = string(opCtx.Operation.Operation)
	}
	field := rootField(opCtx.Operation)

	start := time.Now()
	resp := next(ctx)
	if resp == nil {
		return nil
	}

	operationsTotal.WithLabelValues(kind, field).Inc()
	operationDuration.WithLabelValues(kind, field).Observe(time.Since(start).Seconds())
	if len(resp.Errors) > 0 {
		operationErrors.WithLabelValues(kind, field).Inc()
	}
	return resp
}

// rootField returns the schema name of the first root field an operation
// selects. Operation names come from clients and would make the label set
// unbounded; validated root fields are limited to the schema.
func rootField(op *ast.OperationDefinition) string {
	if op == nil {
		return "unknown"
	}
	if name := firstField(op.SelectionSet); name != "" {
		return name
	}
	return "unknown"
}

func firstField(set ast.SelectionSet) string {
	for _, sel := range set {
		switch sel := sel.(type) {
		case *ast.Field:
			return sel.Name
		case *ast.InlineFragment:
			if name := firstField(sel.SelectionSet); name != "" {
				return name
			}
		case *ast.FragmentSpread:
			if sel.Definition != nil {
				if name := firstField(sel.Definition.SelectionSet); name != "" {
					return name
				}
			}
		}
	}
	return ""
}

// GinMiddleware counts requests by method, route and status.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
