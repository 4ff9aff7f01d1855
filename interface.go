package ttlcache

// KeyConstraint is an interface for key constraints.
type KeyConstraint interface {
	comparable
}

// ValueConstraint is an interface for value constraints.
type ValueConstraint interface {
	any
}
