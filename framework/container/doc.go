// Package container provides LiteFlare's IoC (Inversion of Control)
// container: a registry of abstract identifiers resolved into concrete
// instances on demand, with singleton caching, constructor auto-wiring,
// and circular dependency detection.
//
// # Overview
//
// A binding maps an abstract identifier (a string, commonly a type or
// interface name) to a concrete Definition: a Factory closure, an Alias to
// another identifier, a literal Value, or a TypeRef naming a constructible
// type. Unregistered identifiers self-bind on first lookup, so concrete
// types resolve with no explicit mapping at all.
//
// # Registering
//
//	c := container.New()
//
//	// Transient — resolved fresh on every Get
//	// Laravel: $app->bind(Foo::class, fn($app) => new Foo)
//	c.Register("Foo", container.Factory(func(c *container.Container, _ ...any) (any, error) {
//	    return &Foo{}, nil
//	}))
//
//	// Singleton — resolved once, cached forever
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache)
//	c.RegisterSingleton("cache", container.Factory(func(c *container.Container, _ ...any) (any, error) {
//	    cfg, err := container.Resolve[*config.Config](c, "config")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return cache.New(cfg), nil
//	}))
//
//	// Pre-built value
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", myConfig)
//
//	// Alias
//	// Laravel: $app->bind('cache', RedisCache::class)
//	c.Register("cache", container.Alias("RedisCache"))
//
// # Auto-wiring
//
// Go has no constructor reflection, so each constructible type declares a
// Blueprint once: its ordered parameter list and a positional build
// function. Service parameters are resolved recursively through the same
// container; builtin parameters fall back to their declared default.
//
//	c.DefineType("Connection", container.Blueprint{
//	    Params: []container.Param{container.Optional("dsn", "sqlite::memory:")},
//	    Build: func(args ...any) (any, error) {
//	        return OpenConnection(args[0].(string)), nil
//	    },
//	})
//	c.DefineType("NoteRepository", container.Blueprint{
//	    Params: []container.Param{container.Dep("conn", "Connection")},
//	    Build: func(args ...any) (any, error) {
//	        return &NoteRepository{Conn: args[0].(*Connection)}, nil
//	    },
//	})
//
//	// Nothing registered under "NoteRepository" — it self-binds and
//	// Connection is wired in transitively.
//	repo, err := c.Get("NoteRepository")
//
// # Resolving
//
//	// Untyped
//	// Laravel: $app->make(Cache::class)
//	raw, err := c.Get("cache")
//
//	// Generic (preferred — no type assertion required)
//	cache, err := container.Resolve[*RedisCache](c, "cache")
//
// # Failure modes
//
// Get fails fast, and every failure aborts the whole resolution chain:
//
//   - *CircularDependencyError — the identifier is already being resolved
//     in this call chain (A needs B needs A)
//   - *InstantiationError — a type has no registered blueprint
//   - *UnresolvableDependencyError — a builtin parameter has no default
//
// A failed resolution leaves no trace: the same identifier can be fixed
// up (rebound, blueprint added) and resolved again immediately. Treat
// container errors as fatal configuration problems at bootstrap.
//
// # Concurrency
//
// The registry maps are mutex-guarded, and each Get chain carries its own
// resolution path on a scoped container view, so concurrent resolutions
// never see each other's in-progress state. Per-request containers remain
// the recommended setup for request-scoped services.
package container
