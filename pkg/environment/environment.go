package environment

import "context"

// Environment names the deployment environment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

type contextKey struct{}

// WithContext stores the environment name in the context.
func WithContext(ctx context.Context, env string) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves the environment name from the context, or "" when
// none was stored.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(string)
	return env
}

// IsProduction reports whether the context's environment is production.
func IsProduction(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == string(Production) || env == "prod"
}

// IsDevelopment reports whether the context's environment is development.
func IsDevelopment(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == string(Development) || env == "dev"
}
