package model

// Object is anything the cache may hold under an oid.
type Object interface {
	// OID is the identifier the object declares for itself.
	OID() OID
	// Refs is the number of holders outside the cache.
	Refs() int
}

// Class is a shared, externally-owned class placeholder.
type Class interface {
	Object
	ClassName() string
}

// Persistent is an instance shell capable of being cached.
// A shell keeps its identity when ghosted; only its field state is dropped.
type Persistent interface {
	Object
	State() State
	// Deactivate discards the field state in place, turning the shell into a ghost.
	// It may run arbitrary code, including calls back into the owning cache.
	Deactivate() error
	// Owner is the cache currently holding the shell, or nil.
	Owner() Owner
	SetOwner(owner Owner)
}

// Owner is the side of a cache a shell talks to.
// A shell must call Ghosted before running any other code once it has become a ghost,
// and Activated once it holds state again.
type Owner interface {
	Activated(oid OID) error
	Ghosted(oid OID) error
	// Unreferenced tells the cache that the ghost under oid lost its last outside holder.
	Unreferenced(oid OID) error
}

// Jar is the owner handle of a cache: the connection that loads objects.
type Jar interface {
	// SetClassState marks a class that is still referenced as invalidated.
	SetClassState(class Class) error
}
