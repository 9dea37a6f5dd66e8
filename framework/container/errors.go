package container

import (
	"fmt"
	"strings"
)

// ── Errors ────────────────────────────────────────────────────────────────────

// ResolutionError is implemented by every error the container produces
// while resolving. Callers that only care whether Get failed can match on
// this; callers that need the kind use errors.As with the concrete types.
type ResolutionError interface {
	error
	resolutionError()
}

// CircularDependencyError reports that an abstract identifier was requested
// while it was already being resolved in the same call chain.
type CircularDependencyError struct {
	// Abstract is the identifier whose re-entry closed the cycle.
	Abstract string
	// Path is the chain of identifiers that was being resolved, outermost
	// first, at the moment the cycle was detected.
	Path []string
}

func (e *CircularDependencyError) Error() string {
	chain := append(append([]string(nil), e.Path...), e.Abstract)
	return fmt.Sprintf("container: circular dependency detected for [%s] (resolving %s)",
		e.Abstract, strings.Join(chain, " -> "))
}

// InstantiationError reports that a concrete type could not be constructed,
// typically because no Blueprint is registered under its name.
type InstantiationError struct {
	Type   string
	Reason string
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("container: cannot instantiate [%s]: %s", e.Type, e.Reason)
}

// UnresolvableDependencyError reports a constructor parameter that names no
// service and carries no default value.
type UnresolvableDependencyError struct {
	// Type is the concrete type whose construction failed.
	Type string
	// Param is the offending parameter name.
	Param string
}

func (e *UnresolvableDependencyError) Error() string {
	return fmt.Sprintf("container: unresolvable dependency [%s] while constructing [%s]",
		e.Param, e.Type)
}

func (*CircularDependencyError) resolutionError()     {}
func (*InstantiationError) resolutionError()          {}
func (*UnresolvableDependencyError) resolutionError() {}
