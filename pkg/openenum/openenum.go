/*
Copyright 2019 Alexander Eldeib.
*/

// Package openenum implements string enumerations whose set of legal values
// may grow on the server before the client is rebuilt.
//
// A Table holds the wire strings a client knows about. Decoding against a
// table never fails: a string that matches no entry is kept verbatim and
// re-emitted unchanged on encode. Matching is exact and case-sensitive.
//
// Tables built with Closed() describe enumerations the service promises never
// to extend. Decode stays total for them, but Parse and JSON unmarshalling
// reject values outside the table.
package openenum

import (
	"fmt"
	"reflect"

	"github.com/alexeldeib/azmodels/pkg/stringslice"
)

// Family is the type-erased view of a Table, used by catalogs and by code
// that walks models without knowing their concrete enum types.
type Family interface {
	// Name is the enumeration's schema name, e.g. "StorageAccountTypes".
	Name() string
	// Closed reports whether unknown values are rejected by Parse.
	Closed() bool
	// Wire returns the known wire strings in declaration order.
	Wire() []string
	// IsKnown reports whether wire exactly matches a known value.
	IsKnown(wire string) bool
	// Type is the Go type backing the enumeration.
	Type() reflect.Type
	// DefaultWire returns the schema default, if one is declared.
	DefaultWire() (string, bool)
}

// Option configures a Table at construction.
type Option func(*settings)

type settings struct {
	closed     bool
	defaultSet bool
	defaultVal string
}

// Closed marks the enumeration as not extensible.
func Closed() Option {
	return func(s *settings) {
		s.closed = true
	}
}

// Default records the schema default. It must be one of the table's values.
func Default(wire string) Option {
	return func(s *settings) {
		s.defaultSet = true
		s.defaultVal = wire
	}
}

// Table is the codec for one enumeration family. It is immutable after New
// returns and safe for concurrent use.
type Table[T ~string] struct {
	name   string
	values []T
	index  map[string]T
	closed bool
	def    *T
}

var _ Family = (*Table[string])(nil)

// New builds the table for the named family. Values keep their declaration
// order. New panics on a duplicate wire string or an unknown default, both of
// which are mistakes in the declaring package.
func New[T ~string](name string, values []T, opts ...Option) *Table[T] {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}

	t := &Table[T]{
		name:   name,
		values: make([]T, 0, len(values)),
		index:  make(map[string]T, len(values)),
		closed: s.closed,
	}
	for _, v := range values {
		if _, dup := t.index[string(v)]; dup {
			panic(fmt.Sprintf("openenum: %s declares %q twice", name, string(v)))
		}
		t.index[string(v)] = v
		t.values = append(t.values, v)
	}

	if s.defaultSet {
		v, ok := t.index[s.defaultVal]
		if !ok {
			panic(fmt.Sprintf("openenum: %s default %q is not a known value", name, s.defaultVal))
		}
		t.def = &v
	}
	return t
}

// Name returns the family name.
func (t *Table[T]) Name() string {
	return t.name
}

// Closed reports whether the family rejects unknown values in Parse.
func (t *Table[T]) Closed() bool {
	return t.closed
}

// Values returns a copy of the known values in declaration order.
func (t *Table[T]) Values() []T {
	out := make([]T, len(t.values))
	copy(out, t.values)
	return out
}

// Wire returns the known wire strings in declaration order.
func (t *Table[T]) Wire() []string {
	return stringslice.Strings(t.values)
}

// Known reports whether v is one of the table's values.
func (t *Table[T]) Known(v T) bool {
	return t.IsKnown(string(v))
}

// IsKnown reports whether wire exactly matches a known value.
func (t *Table[T]) IsKnown(wire string) bool {
	_, ok := t.index[wire]
	return ok
}

// Type returns the Go type backing the family.
func (t *Table[T]) Type() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Default returns the schema default, if the family declares one.
func (t *Table[T]) Default() (T, bool) {
	if t.def == nil {
		var zero T
		return zero, false
	}
	return *t.def, true
}

// DefaultWire is Default as a wire string.
func (t *Table[T]) DefaultWire() (string, bool) {
	d, ok := t.Default()
	return string(d), ok
}

// Decode maps a wire string to a Value. It never fails.
func (t *Table[T]) Decode(wire string) Value[T] {
	if v, ok := t.index[wire]; ok {
		return Value[T]{v: v, known: true}
	}
	return Value[T]{v: T(wire)}
}

// Encode returns the wire string for v. Known values map to their declared
// spelling and anything else is returned unchanged.
func (t *Table[T]) Encode(v T) string {
	if known, ok := t.index[string(v)]; ok {
		return string(known)
	}
	return string(v)
}

// Parse decodes wire and, for closed families only, rejects values the table
// does not know.
func (t *Table[T]) Parse(wire string) (T, error) {
	v := t.Decode(wire)
	if t.closed && !v.known {
		return v.v, &UnknownValueError{Family: t.name, Value: wire}
	}
	return v.v, nil
}

// Value is the result of decoding a wire string: either a known member of the
// family or the verbatim string the table did not recognize.
type Value[T ~string] struct {
	v     T
	known bool
}

// Known reports whether the value matched the table.
func (v Value[T]) Known() bool {
	return v.known
}

// Get returns the typed value. For unrecognized input it holds the original
// string.
func (v Value[T]) Get() T {
	return v.v
}

// Raw returns the wire string the value was decoded from.
func (v Value[T]) Raw() string {
	return string(v.v)
}

func (v Value[T]) String() string {
	if v.known {
		return string(v.v)
	}
	return fmt.Sprintf("unknown(%q)", string(v.v))
}
