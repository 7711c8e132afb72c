// Package symbols holds the two tables shared by the pipeline stages: the
// runtime variable store and the set of declared names.
package symbols

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrSymbolNotFound error = errors.New("symbol not found")
)

type Entry struct {
	Name  string
	Value int64
}

// Store maps a variable name to its last assigned value. Names keep the order
// of their first assignment.
type Store struct {
	values map[string]int64
	order  []string
}

func NewStore() *Store {
	return &Store{values: map[string]int64{}}
}

func (store *Store) Get(name string) (int64, bool) {
	value, ok := store.values[name]
	return value, ok
}

func (store *Store) Lookup(name string) (int64, error) {
	if value, ok := store.values[name]; ok {
		return value, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
}

func (store *Store) Set(name string, value int64) {
	if _, ok := store.values[name]; !ok {
		store.order = append(store.order, name)
	}
	store.values[name] = value
}

func (store *Store) Len() int { return len(store.values) }

func (store *Store) Names() []string {
	names := make([]string, len(store.order))
	copy(names, store.order)
	return names
}

func (store *Store) Entries() []Entry {
	entries := make([]Entry, len(store.order))
	for i, name := range store.order {
		entries[i] = Entry{Name: name, Value: store.values[name]}
	}
	return entries
}

func (store *Store) Clone() *Store {
	clone := NewStore()
	for _, name := range store.order {
		clone.Set(name, store.values[name])
	}
	return clone
}

func (store *Store) Reset() {
	store.values = map[string]int64{}
	store.order = nil
}

func (store *Store) String() string {
	s := ""
	for _, entry := range store.Entries() {
		s += fmt.Sprintf("%s = %d\n", entry.Name, entry.Value)
	}
	return s
}

// Declared is the set of names accepted as assignment targets by the
// semantic analyzer.
type Declared struct {
	names map[string]struct{}
}

func NewDeclared(names ...string) *Declared {
	declared := &Declared{names: map[string]struct{}{}}
	for _, name := range names {
		declared.Add(name)
	}
	return declared
}

func (declared *Declared) Has(name string) bool {
	_, ok := declared.names[name]
	return ok
}

func (declared *Declared) Add(name string) {
	declared.names[name] = struct{}{}
}

func (declared *Declared) Forget(name string) {
	delete(declared.names, name)
}

func (declared *Declared) Len() int { return len(declared.names) }

// Names returns the declared names sorted.
func (declared *Declared) Names() []string {
	names := make([]string, 0, len(declared.names))
	for name := range declared.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (declared *Declared) Clone() *Declared {
	return NewDeclared(declared.Names()...)
}

func (declared *Declared) Reset() {
	declared.names = map[string]struct{}{}
}
