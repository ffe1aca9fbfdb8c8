package openenum

import (
	"fmt"
	"reflect"
	"sort"
)

// Catalog indexes a set of families by name and by Go type. Model packages
// export one catalog each; callers merge them.
type Catalog struct {
	byName map[string]Family
	byType map[reflect.Type]Family
}

// NewCatalog indexes families. It panics if two families share a name or a
// Go type.
func NewCatalog(families ...Family) *Catalog {
	c := &Catalog{
		byName: make(map[string]Family, len(families)),
		byType: make(map[reflect.Type]Family, len(families)),
	}
	for _, f := range families {
		c.add(f)
	}
	return c
}

func (c *Catalog) add(f Family) {
	if _, dup := c.byName[f.Name()]; dup {
		panic(fmt.Sprintf("openenum: family %s registered twice", f.Name()))
	}
	if _, dup := c.byType[f.Type()]; dup {
		panic(fmt.Sprintf("openenum: type %s registered twice", f.Type()))
	}
	c.byName[f.Name()] = f
	c.byType[f.Type()] = f
}

// Merge returns a new catalog holding the families of c and every other.
func (c *Catalog) Merge(others ...*Catalog) *Catalog {
	out := NewCatalog(c.Families()...)
	for _, o := range others {
		for _, f := range o.Families() {
			out.add(f)
		}
	}
	return out
}

// Lookup finds a family by name.
func (c *Catalog) Lookup(name string) (Family, bool) {
	f, ok := c.byName[name]
	return f, ok
}

// ForType finds the family backed by t.
func (c *Catalog) ForType(t reflect.Type) (Family, bool) {
	f, ok := c.byType[t]
	return f, ok
}

// Families returns every family sorted by name.
func (c *Catalog) Families() []Family {
	out := make([]Family, 0, len(c.byName))
	for _, f := range c.byName {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Len returns the number of families.
func (c *Catalog) Len() int {
	return len(c.byName)
}
