package registry

import (
	"context"
	"fmt"
	"sync"

	"warehouse.GO/core/registry"
)

// ResolverFunc is the signature for _extension resolvers. Args is the JSON-decoded args object.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

var lockOnce sync.Once

// Register adds an extension resolver. Call from init() in custom packages.
// Panics on a duplicate name or after the first Resolve.
func Register(name string, resolve ResolverFunc) {
	registry.Put(registry.GlobalRegistry, registry.KeyRegistryGraphQL, name, resolve)
}

// Unregister removes a resolver and unlocks the registry (for tests).
func Unregister(name string) {
	registry.Delete[ResolverFunc](registry.GlobalRegistry, registry.KeyRegistryGraphQL, name)
	lockOnce = sync.Once{}
}

// Resolve runs the named resolver. The first call locks the registry.
func Resolve(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	lockOnce.Do(func() { registry.GlobalRegistry.Lock(registry.KeyRegistryGraphQL) })
	resolve, ok := registry.Lookup[ResolverFunc](registry.GlobalRegistry, registry.KeyRegistryGraphQL, name)
	if !ok {
		return nil, fmt.Errorf("unknown extension: %s", name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return resolve(ctx, args)
}

// Names returns the registered extension names, sorted.
func Names() []string {
	return registry.Names[ResolverFunc](registry.GlobalRegistry, registry.KeyRegistryGraphQL)
}
