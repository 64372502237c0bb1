package services

// Owned is any record with an owning user.
type Owned interface {
	OwnerID() uint
}

// Authorizer decides whether an actor may mutate a resource.
type Authorizer interface {
	Authorize(actorID uint, resource Owned) bool
}

// OwnerPolicy allows only the owner of the record.
type OwnerPolicy struct{}

func (OwnerPolicy) Authorize(actorID uint, resource Owned) bool {
	return resource.OwnerID() == actorID
}

// AuthorizerFunc adapts a plain function to Authorizer.
type AuthorizerFunc func(actorID uint, resource Owned) bool

func (f AuthorizerFunc) Authorize(actorID uint, resource Owned) bool {
	return f(actorID, resource)
}
