package registry

import (
	"fmt"
	"sort"
)

// Append adds v to the list stored under key. It panics when key is locked.
func Append[T any](r *Registry, key string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		panic(fmt.Sprintf("registry: %s locked (register only during init)", key))
	}
	list, _ := r.values[key].([]T)
	r.values[key] = append(list, v)
}

// List returns a copy of the list stored under key.
func List[T any](r *Registry, key string) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list, _ := r.values[key].([]T)
	return append([]T(nil), list...)
}

// Put stores v as name in the map under key. It panics when key is locked or name is taken.
func Put[T any](r *Registry, key, name string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		panic(fmt.Sprintf("registry: %s locked (register only during init)", key))
	}
	m, _ := r.values[key].(map[string]T)
	if m == nil {
		m = make(map[string]T)
		r.values[key] = m
	}
	if _, dup := m[name]; dup {
		panic(fmt.Sprintf("registry: duplicate %s in %s", name, key))
	}
	m[name] = v
}

// Lookup returns the entry stored as name under key.
func Lookup[T any](r *Registry, key, name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, _ := r.values[key].(map[string]T)
	v, ok := m[name]
	return v, ok
}

// Entries returns a copy of the map stored under key.
func Entries[T any](r *Registry, key string) map[string]T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, _ := r.values[key].(map[string]T)
	out := make(map[string]T, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Names returns the sorted entry names under key.
func Names[T any](r *Registry, key string) []string {
	m := Entries[T](r, key)
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Delete removes name from the map under key and unlocks key. For tests.
func Delete[T any](r *Registry, key, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locked, key)
	if m, ok := r.values[key].(map[string]T); ok {
		delete(m, name)
	}
}
