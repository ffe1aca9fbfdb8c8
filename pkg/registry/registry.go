/*
Copyright 2019 Alexander Eldeib.
*/

// Package registry maps document kinds and ARM resource types to the Go
// models that decode them, and collects the enumeration catalogs those
// models use.
package registry

import (
	"reflect"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/alexeldeib/azmodels/pkg/openenum"
)

// Kind describes one decodable model.
type Kind struct {
	// Name is the Go type name, used as an explicit document kind.
	Name string
	// ResourceType is the ARM type, e.g. Microsoft.Compute/disks. Payloads
	// that are not ARM resources leave it empty.
	ResourceType string
	// APIVersion is the service version the model describes.
	APIVersion string

	newFn func() any
	typ   reflect.Type
}

// KindFor describes T under the given name and resource type.
func KindFor[T any](name, resourceType string) Kind {
	return Kind{
		Name:         name,
		ResourceType: resourceType,
		newFn:        func() any { return new(T) },
		typ:          reflect.TypeOf((*T)(nil)),
	}
}

// At returns a copy of k describing the given service version.
func (k Kind) At(apiVersion string) Kind {
	k.APIVersion = apiVersion
	return k
}

// New returns a pointer to a zero value of the kind.
func (k Kind) New() any {
	return k.newFn()
}

// Registry is safe for concurrent reads once populated.
type Registry struct {
	byName map[string]Kind
	byType map[string]Kind
	byGo   map[reflect.Type]Kind
	enums  *openenum.Catalog
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byName: map[string]Kind{},
		byType: map[string]Kind{},
		byGo:   map[reflect.Type]Kind{},
		enums:  openenum.NewCatalog(),
	}
}

// Register adds kinds. Names and resource types must be unique; resource
// types compare case-insensitively as ARM does.
func (r *Registry) Register(kinds ...Kind) error {
	for _, k := range kinds {
		if k.newFn == nil {
			return errors.Errorf("kind %q was not built with KindFor", k.Name)
		}
		if _, dup := r.byName[k.Name]; dup {
			return errors.Errorf("kind %q already registered", k.Name)
		}
		key := strings.ToLower(k.ResourceType)
		if key != "" {
			if _, dup := r.byType[key]; dup {
				return errors.Errorf("resource type %q already registered", k.ResourceType)
			}
			r.byType[key] = k
		}
		r.byName[k.Name] = k
		r.byGo[k.typ] = k
	}
	return nil
}

// AddEnums merges a package's enumeration catalog into the registry.
func (r *Registry) AddEnums(c *openenum.Catalog) error {
	for _, f := range c.Families() {
		if _, dup := r.enums.Lookup(f.Name()); dup {
			return errors.Errorf("enumeration %s already registered", f.Name())
		}
	}
	r.enums = r.enums.Merge(c)
	return nil
}

// Enums returns every registered enumeration family.
func (r *Registry) Enums() *openenum.Catalog {
	return r.enums
}

// ForName finds a kind by its name.
func (r *Registry) ForName(name string) (Kind, bool) {
	k, ok := r.byName[name]
	return k, ok
}

// ForResourceType finds a kind by ARM resource type.
func (r *Registry) ForResourceType(resourceType string) (Kind, bool) {
	k, ok := r.byType[strings.ToLower(resourceType)]
	return k, ok
}

// KindOf finds the kind of a decoded object. obj must be a pointer, as
// returned by Kind.New.
func (r *Registry) KindOf(obj any) (Kind, bool) {
	k, ok := r.byGo[reflect.TypeOf(obj)]
	return k, ok
}

// Kinds returns every kind sorted by name.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.byName))
	for _, k := range r.byName {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
