package registry

// Builder collects registration functions so model packages can expose a
// single AddToRegistry.
type Builder []func(*Registry) error

// NewBuilder returns a builder seeded with funcs.
func NewBuilder(funcs ...func(*Registry) error) *Builder {
	b := &Builder{}
	b.Register(funcs...)
	return b
}

// Register appends registration functions.
func (b *Builder) Register(funcs ...func(*Registry) error) {
	*b = append(*b, funcs...)
}

// AddToRegistry applies every registration function in order.
func (b *Builder) AddToRegistry(r *Registry) error {
	for _, f := range *b {
		if err := f(r); err != nil {
			return err
		}
	}
	return nil
}
