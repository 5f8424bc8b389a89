package symbol

import "fmt"

// CollisionError is returned when two logical names hash to one symbol.
type CollisionError struct {
	Symbol   Symbol
	Existing string
	Incoming string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("symbol %s derived from both %q and %q", e.Symbol, e.Existing, e.Incoming)
}

// Entry is one logical name and the symbol derived from it.
type Entry struct {
	Logical string
	Symbol  Symbol
}

// Registry records derived symbols so hash collisions surface as errors.
// Derived alone trusts the hash space; callers that want the stronger
// guarantee route derivations through a Registry. The zero value is ready.
type Registry struct {
	bySymbol map[string]string
	entries  []Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{bySymbol: make(map[string]string)}
}

// Derive returns Derived(logical) and records it.
func (r *Registry) Derive(logical string) (Symbol, error) {
	sym := Derived(logical)
	if r.bySymbol == nil {
		r.bySymbol = make(map[string]string)
	}
	if prev, ok := r.bySymbol[sym.name]; ok {
		if prev != logical {
			return Symbol{}, &CollisionError{Symbol: sym, Existing: prev, Incoming: logical}
		}
		return sym, nil
	}
	r.bySymbol[sym.name] = logical
	r.entries = append(r.entries, Entry{Logical: logical, Symbol: sym})
	return sym, nil
}

// Lookup returns the logical name recorded for sym.
func (r *Registry) Lookup(sym Symbol) (string, bool) {
	if r == nil || r.bySymbol == nil {
		return "", false
	}
	logical, ok := r.bySymbol[sym.name]
	return logical, ok
}

// Entries returns the recorded mappings in insertion order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of distinct logical names recorded.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}
