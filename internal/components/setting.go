package components

import "context"

// ResolveContext is passed to resolver settings. Record carries whatever row or
// form state the host has for the field being rendered.
type ResolveContext struct {
	Ctx    context.Context
	Field  string
	Record map[string]any
}

// Setting is either a literal value or a resolver evaluated once per configuration resolution.
type Setting[T any] struct {
	value    T
	resolver func(ResolveContext) T
	set      bool
}

// Value wraps a literal setting.
func Value[T any](v T) Setting[T] {
	return Setting[T]{value: v, set: true}
}

// Resolver wraps a setting computed from the resolve context.
func Resolver[T any](fn func(ResolveContext) T) Setting[T] {
	return Setting[T]{resolver: fn, set: fn != nil}
}

// IsSet reports whether the setting overrides the defaults.
func (s Setting[T]) IsSet() bool {
	return s.set
}

// IsLiteral reports whether the setting holds a plain value.
func (s Setting[T]) IsLiteral() bool {
	return s.set && s.resolver == nil
}

// Resolve returns the setting's value for rc, or false when unset.
func (s Setting[T]) Resolve(rc ResolveContext) (T, bool) {
	if !s.set {
		var zero T
		return zero, false
	}
	if s.resolver != nil {
		return s.resolver(rc), true
	}
	return s.value, true
}
