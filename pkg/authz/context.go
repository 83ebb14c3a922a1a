package authz

import "context"

// userCtxKey is the context key for the authenticated user snapshot.
type userCtxKey struct{}

// WithUser stores the user snapshot in the context.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext retrieves the user snapshot from the context.
func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(User)
	return user, ok
}
