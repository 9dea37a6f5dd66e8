package container

// ── Definitions ───────────────────────────────────────────────────────────────

// Definition is the concrete side of a binding — what an abstract
// identifier resolves to when it is requested from the container.
//
// Exactly one of four shapes:
//   - Factory — build the value on demand
//   - Alias   — point at another registered abstract
//   - Value   — a literal, pre-built value
//   - TypeRef — the name of a concrete type constructed from its Blueprint
type Definition interface {
	definition()
}

// Factory builds a value on demand. It receives the active container
// followed by any parameters forwarded through Get, positionally.
//
//	// Laravel: $app->bind(Cache::class, fn($app) => new RedisCache($app))
//	c.Register("cache", container.Factory(func(c *container.Container, _ ...any) (any, error) {
//	    cfg, err := container.Resolve[*config.Config](c, "config")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return cache.New(cfg), nil
//	}))
type Factory func(c *Container, parameters ...any) (any, error)

// Alias points a binding at another registered abstract identifier.
// Resolution of the target is a direct lookup that does NOT flow back
// through Get — no cycle detection, no singleton caching on the inner hop.
//
//	// Laravel: $app->bind('cache', RedisCache::class)
//	c.Register("cache", container.Alias("RedisCache"))
type Alias string

// Value is a literal, pre-built binding. Get returns V as-is, identity
// preserved across calls.
type Value struct {
	V any
}

// TypeRef names a concrete type to construct from its registered
// Blueprint. Registering with a nil concrete stores TypeRef(abstract) —
// the abstract is its own concrete type (self-binding).
type TypeRef string

func (Factory) definition() {}
func (Alias) definition()   {}
func (Value) definition()   {}
func (TypeRef) definition() {}
