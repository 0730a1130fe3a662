package option

import (
	"strings"
)

// Registry is an ordered collection of declared options.
// A Registry is not safe for concurrent mutation, so each argument vector parse works on its own [Registry.Clone].
type Registry struct {
	options []Option
}

// NewRegistry creates a [Registry] seeded with the given options.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{options: make([]Option, 0, len(options))}
	r.options = append(r.options, options...)
	return r
}

// Add appends an [Option] to the Registry.
func (r *Registry) Add(o Option) {
	r.options = append(r.options, o)
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.options)
}

// Options returns a copy of the registered options in declaration order.
func (r *Registry) Options() []Option {
	if len(r.options) == 0 {
		return nil
	}
	cp := make([]Option, len(r.options))
	copy(cp, r.options)
	return cp
}

// Clone returns an independent copy of the Registry.
func (r *Registry) Clone() *Registry {
	return NewRegistry(r.options...)
}

// Long returns every [Option] with exactly the given long form.
func (r *Registry) Long(long string) []Option {
	if len(long) == 0 {
		return nil
	}
	var found []Option
	for _, o := range r.options {
		if o.Long == long {
			found = append(found, o)
		}
	}
	return found
}

// LongPrefix returns every [Option] whose long form starts with prefix.
func (r *Registry) LongPrefix(prefix string) []Option {
	var found []Option
	for _, o := range r.options {
		if len(o.Long) > 0 && strings.HasPrefix(o.Long, prefix) {
			found = append(found, o)
		}
	}
	return found
}

// Short returns every [Option] with exactly the given short form.
func (r *Registry) Short(short string) []Option {
	if len(short) == 0 {
		return nil
	}
	var found []Option
	for _, o := range r.options {
		if o.Short == short {
			found = append(found, o)
		}
	}
	return found
}
