package identity

// StaticResolver always resolves to the same identity
type StaticResolver struct {
	id Identity
}

// NewStaticResolver creates a resolver for a fixed identity
func NewStaticResolver(id Identity) *StaticResolver {
	return &StaticResolver{id: id.Clone()}
}

// Resolve implements Resolver
func (r *StaticResolver) Resolve() (Identity, error) {
	return r.id.Clone(), nil
}
