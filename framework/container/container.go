package container

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container at the heart of LiteFlare — the registry
// that maps abstract identifiers to concrete definitions and resolves them
// into instances on demand.
//
// It supports:
//   - Register / RegisterSingleton / Instance
//   - Get (with optional positional parameters for Factory bindings)
//   - DefineType (constructor blueprints for auto-wiring)
//   - Circular dependency detection across the whole resolution chain
//
// The registry maps are shared and mutex-guarded; the active resolution
// path is NOT — it travels down each call chain on scoped container views,
// so independent Get chains (including concurrent ones) never contaminate
// each other and a failed resolution never poisons later lookups.
type Container struct {
	state *state

	// path is the ordered chain of abstracts being resolved in this call
	// chain. Empty on the root container, before and after every
	// top-level Get.
	path []string
}

// state is the registry shared by the root container and all of its
// resolution-scoped views.
type state struct {
	mu sync.RWMutex

	// abstract → concrete definition
	bindings map[string]Definition

	// abstract → cache-after-first-resolution flag
	singletons map[string]bool

	// type name → constructor blueprint
	blueprints map[string]Blueprint
}

// New creates an empty container.
func New() *Container {
	c := &Container{
		state: &state{
			bindings:   make(map[string]Definition),
			singletons: make(map[string]bool),
			blueprints: make(map[string]Blueprint),
		},
	}
	// Bind the container to itself — like Laravel's $app->instance()
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Register stores concrete under abstract, overwriting any prior binding.
// A nil concrete self-binds: the abstract is treated as its own concrete
// type name, enabling auto-wiring of types with no explicit mapping.
//
// Re-registering does not clear the singleton flag; use Forget first to
// rebind a once-singleton name from scratch.
//
//	// Laravel: $app->bind(UserRepository::class, EloquentUserRepository::class)
//	c.Register("UserRepository", container.TypeRef("EloquentUserRepository"))
func (c *Container) Register(abstract string, concrete Definition) {
	s := c.state
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[abstract] = selfBindIfNil(abstract, concrete)
}

// RegisterSingleton is Register plus the singleton flag: after the first
// successful resolution the instance is cached and reused for every later
// Get on the same abstract.
//
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache($app))
//	c.RegisterSingleton("cache", container.Factory(func(c *container.Container, _ ...any) (any, error) {
//	    return cache.New(), nil
//	}))
func (c *Container) RegisterSingleton(abstract string, concrete Definition) {
	s := c.state
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[abstract] = selfBindIfNil(abstract, concrete)
	s.singletons[abstract] = true
}

// Instance registers a pre-built value. Every Get returns the value itself.
//
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", myConfig)
func (c *Container) Instance(abstract string, v any) {
	c.Register(abstract, Value{V: v})
}

// DefineType registers the constructor blueprint for a concrete type,
// making it constructible through Get and through auto-wired dependencies.
func (c *Container) DefineType(name string, bp Blueprint) {
	s := c.state
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blueprints[name] = bp
}

func selfBindIfNil(abstract string, concrete Definition) Definition {
	if concrete == nil {
		return TypeRef(abstract)
	}
	return concrete
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves abstract into an instance.
//
// Unregistered abstracts are auto-registered as self-bindings first, so any
// type with a blueprint resolves without an explicit Register call. Extra
// parameters are forwarded positionally to Factory bindings.
//
// Fails with *CircularDependencyError if abstract is already being resolved
// in this call chain, with *InstantiationError or
// *UnresolvableDependencyError when construction is impossible.
//
//	// Laravel: $app->make(UserRepository::class)
//	repo, err := c.Get("UserRepository")
func (c *Container) Get(abstract string, parameters ...any) (any, error) {
	for _, active := range c.path {
		if active == abstract {
			return nil, &CircularDependencyError{
				Abstract: abstract,
				Path:     append([]string(nil), c.path...),
			}
		}
	}

	s := c.state
	s.mu.Lock()
	def, bound := s.bindings[abstract]
	if !bound {
		def = TypeRef(abstract)
		s.bindings[abstract] = def
	}
	singleton := s.singletons[abstract]
	s.mu.Unlock()

	// The scoped view carries abstract on its path for the extent of this
	// resolution only. The entry is released on every exit path — success
	// or failure — because it never outlives the view.
	scoped := &Container{
		state: s,
		path:  append(c.path[:len(c.path):len(c.path)], abstract),
	}

	instance, err := scoped.resolve(def, parameters)
	if err != nil {
		return nil, err
	}

	if singleton {
		s.mu.Lock()
		s.bindings[abstract] = Value{V: instance}
		s.mu.Unlock()
	}
	return instance, nil
}

// MustGet is Get, panicking on failure. Intended for bootstrap code where
// a resolution failure is a fatal configuration problem.
func (c *Container) MustGet(abstract string, parameters ...any) any {
	instance, err := c.Get(abstract, parameters...)
	if err != nil {
		panic(err)
	}
	return instance
}

// resolve turns a definition into an instance. Factory definitions receive
// the scoped container plus the forwarded parameters; Alias definitions
// take the direct-lookup shortcut; TypeRef definitions construct from
// their blueprint.
func (c *Container) resolve(def Definition, parameters []any) (any, error) {
	switch d := def.(type) {
	case Factory:
		return d(c, parameters...)

	case Value:
		return d.V, nil

	case Alias:
		return c.resolveAlias(d)

	case TypeRef:
		return c.construct(string(d))
	}
	return nil, &InstantiationError{
		Type:   fmt.Sprintf("%T", def),
		Reason: "unknown definition kind",
	}
}

// resolveAlias looks up the alias target directly, without flowing back
// through Get: the inner hop sees no cycle detection and no singleton
// caching. An unbound target is treated as a concrete type name.
func (c *Container) resolveAlias(alias Alias) (any, error) {
	s := c.state
	s.mu.RLock()
	target, bound := s.bindings[string(alias)]
	s.mu.RUnlock()

	if !bound {
		return c.construct(string(alias))
	}

	switch t := target.(type) {
	case Factory:
		// Invocable target: invoked with no extra parameters.
		return t(c)
	case Value:
		return t.V, nil
	case TypeRef:
		return c.construct(string(t))
	case Alias:
		// One hop only. A nested alias comes back as the stored name;
		// resolving it through Get is the supported route.
		return string(t), nil
	}
	return nil, &InstantiationError{Type: string(alias), Reason: "unknown definition kind"}
}

// construct builds a concrete type from its registered blueprint.
func (c *Container) construct(name string) (any, error) {
	s := c.state
	s.mu.RLock()
	bp, ok := s.blueprints[name]
	s.mu.RUnlock()

	if !ok || bp.Build == nil {
		return nil, &InstantiationError{Type: name, Reason: "no blueprint registered"}
	}
	if len(bp.Params) == 0 {
		return bp.Build()
	}

	args, err := c.dependencies(name, bp.Params)
	if err != nil {
		return nil, err
	}
	return bp.Build(args...)
}

// dependencies resolves a blueprint's parameter list, in declaration
// order. Service parameters recurse through Get on the scoped container —
// the path circular dependencies are detected on; builtin parameters take
// their default or fail.
func (c *Container) dependencies(typeName string, params []Param) ([]any, error) {
	args := make([]any, 0, len(params))
	for _, p := range params {
		if p.Service == "" {
			if !p.HasDefault {
				return nil, &UnresolvableDependencyError{Type: typeName, Param: p.Name}
			}
			args = append(args, p.Default)
			continue
		}

		dep, err := c.Get(p.Service)
		if err != nil {
			return nil, err
		}
		args = append(args, dep)
	}
	return args, nil
}

// ── Introspection ─────────────────────────────────────────────────────────────

// Bound returns true if an abstract has been registered, explicitly or by
// a previous auto-registering Get.
//
//	// Laravel: $app->bound(UserRepository::class)
func (c *Container) Bound(abstract string) bool {
	s := c.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bindings[abstract]
	return ok
}

// IsSingleton returns true if abstract carries the singleton flag.
func (c *Container) IsSingleton(abstract string) bool {
	s := c.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.singletons[abstract]
}

// Forget removes the binding, singleton flag, and any cached singleton
// instance for abstract. The explicit way to demote or rebind a name that
// was once a singleton.
//
//	// Laravel: $app->forgetInstance(Cache::class)
func (c *Container) Forget(abstract string) {
	s := c.state
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bindings, abstract)
	delete(s.singletons, abstract)
}

// Flush resets the entire container, blueprints included.
func (c *Container) Flush() {
	s := c.state
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = make(map[string]Definition)
	s.singletons = make(map[string]bool)
	s.blueprints = make(map[string]Blueprint)
}

// Bindings returns all registered abstract keys (for debugging).
func (c *Container) Bindings() []string {
	s := c.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.bindings))
	for k := range s.bindings {
		out = append(out, k)
	}
	return out
}

// ── Reflect helpers ───────────────────────────────────────────────────────────

// TypeKey returns the package-qualified type name of v, useful as a stable
// abstract key when working with interfaces.
//
//	key := container.TypeKey((*UserRepository)(nil))  // "main.UserRepository"
//	c.RegisterSingleton(key, factory)
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Get and type-asserts the result.
//
//	// Instead of: db, err := c.Get("db"); db.(*sql.DB)
//	// Write:      db, err := container.Resolve[*sql.DB](c, "db")
func Resolve[T any](c *Container, abstract string) (T, error) {
	var zero T
	instance, err := c.Get(abstract)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("container: Resolve[%T]: [%s] resolved to %T", zero, abstract, instance)
	}
	return typed, nil
}

// MustResolve is Resolve, panicking on failure.
func MustResolve[T any](c *Container, abstract string) T {
	typed, err := Resolve[T](c, abstract)
	if err != nil {
		panic(err)
	}
	return typed
}
