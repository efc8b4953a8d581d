package chidi

import (
	"context"

	"github.com/sectrean/di-kit"
)

// The container's registration API is re-exported so applications that only
// configure a container and resolve services from request scopes can depend
// on a single import. Advanced options are available from the di package
// directly.

// Container is the di-kit dependency injection container.
type Container = di.Container

// Scope resolves services. It is implemented by [*di.Container].
type Scope = di.Scope

// Lifetime specifies how services are created when resolved.
type Lifetime = di.Lifetime

const (
	// Singleton services are created once and shared across all scopes.
	Singleton = di.Singleton
	// Scoped services are created once per request scope.
	Scoped = di.Scoped
	// Transient services are created each time they are resolved.
	Transient = di.Transient
)

var (
	// NewContainer creates a new [Container] with the provided options.
	NewContainer = di.NewContainer

	// WithService registers a service with a value or constructor function.
	WithService = di.WithService

	// WithTag specifies the tag associated with a service.
	WithTag = di.WithTag

	// ValidateContainer checks that all registered services have resolvable
	// dependencies and no cycles.
	ValidateContainer = di.ValidateContainer
)

// As registers an alias for a service. Use with [WithService].
func As[T any]() di.ServiceOption {
	return di.As[T]()
}

// WithTagged specifies a tag for a service dependency. Use with
// [WithService].
func WithTagged[Dependency any](tag any) di.ServiceOption {
	return di.WithTagged[Dependency](tag)
}

// WithCloseFunc sets a custom function to call for a service when its scope
// is closed. Use with [WithService].
func WithCloseFunc[T any](f func(context.Context, T) error) di.ServiceOption {
	return di.UseCloseFunc[T](f)
}
