package compile

import (
	"github.com/pdk/whilst/fault"
	"github.com/pdk/whilst/u"
)

// Variables is a standard value-by-name store.
type Variables struct {
	values map[string]int
}

// GlobalScope returns a new global scope map.
func GlobalScope() *Variables {
	v := Variables{
		values: make(map[string]int),
	}
	return &v
}

// Value returns the value for the given name.
func (v *Variables) Value(name string) (int, error) {

	val, ok := v.values[name]
	if !ok {
		return 0, fault.Evalf("undefined identifier %s", name)
	}

	return val, nil
}

// Defined returns true if name is bound.
func (v *Variables) Defined(name string) bool {
	_, ok := v.values[name]
	return ok
}

// Set binds name to val, creating or overwriting the binding.
func (v *Variables) Set(name string, val int) {
	v.values[name] = val
}

// Names returns the bound names, sorted.
func (v *Variables) Names() []string {
	return u.KeysOf(v.values)
}
