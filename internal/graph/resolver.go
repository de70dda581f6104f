package graph

import "github.com/pokeql/pokeql/internal/dexcore"

// Resolver is the root resolver for the GraphQL schema.
// It holds a reference to dexcore.Core for data access.
type Resolver struct {
	Core *dexcore.Core

	// IDLength is the length of IDs generated for created records that
	// arrive without one.
	IDLength int
}

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Subscription returns SubscriptionResolver implementation.
func (r *Resolver) Subscription() SubscriptionResolver { return &subscriptionResolver{r} }

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type subscriptionResolver struct{ *Resolver }
