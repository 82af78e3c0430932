package wyag

// Resolver turns a user-supplied name into a full object identifier.
type Resolver interface {
	Resolve(repo *Repository, name string, kind Kind, follow bool) (string, error)
}

// IdentityResolver returns names unchanged. It does no short-hash matching
// and does not dereference refs.
type IdentityResolver struct{}

func (IdentityResolver) Resolve(_ *Repository, name string, _ Kind, _ bool) (string, error) {
	return name, nil
}

// FindObject resolves name with the repository's resolver.
func FindObject(repo *Repository, name string, kind Kind, follow bool) (string, error) {
	if repo == nil {
		return "", ErrNilRepository
	}
	return repo.resolver.Resolve(repo, name, kind, follow)
}
