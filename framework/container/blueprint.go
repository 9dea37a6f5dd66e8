package container

// ── Blueprints ────────────────────────────────────────────────────────────────

// Blueprint describes how to construct a concrete type: the ordered
// constructor parameter list plus a positional build function.
//
// It stands in for PHP-style constructor reflection — Go has no runtime
// constructor introspection, so each constructible type declares its own
// wiring once and the container auto-wires from there.
//
//	c.DefineType("NoteRepository", container.Blueprint{
//	    Params: []container.Param{
//	        container.Dep("conn", "Connection"),
//	        container.Optional("table", "notes"),
//	    },
//	    Build: func(args ...any) (any, error) {
//	        return NewNoteRepository(args[0].(*Connection), args[1].(string)), nil
//	    },
//	})
type Blueprint struct {
	// Params are the constructor parameters in declaration order. Build
	// receives one argument per Param, in the same order.
	Params []Param

	// Build instantiates the type from the already-resolved arguments.
	Build func(args ...any) (any, error)
}

// Param describes a single constructor parameter.
type Param struct {
	// Name is the parameter name, used in error reporting.
	Name string

	// Service is the abstract identifier of a class/interface dependency.
	// Empty means the parameter is a builtin (string, int, ...) that cannot
	// be resolved from the container.
	Service string

	// Default is used for builtin parameters when no override exists.
	// Only meaningful when HasDefault is true.
	Default    any
	HasDefault bool
}

// Dep declares a parameter satisfied by resolving service through Get.
// This recursion is what enables transitive auto-wiring.
func Dep(name, service string) Param {
	return Param{Name: name, Service: service}
}

// Optional declares a builtin parameter with a default value.
func Optional(name string, def any) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

// Required declares a builtin parameter with no default. Constructing a
// type that declares one fails with UnresolvableDependencyError unless the
// binding is replaced by a Factory that supplies the value.
func Required(name string) Param {
	return Param{Name: name}
}

// NoArg is a shorthand Blueprint for types with a zero-parameter
// constructor.
//
//	c.DefineType("FileLogger", container.NoArg(func() any { return &FileLogger{} }))
func NoArg(build func() any) Blueprint {
	return Blueprint{
		Build: func(...any) (any, error) { return build(), nil },
	}
}
