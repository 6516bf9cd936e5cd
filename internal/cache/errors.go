package cache

import "errors"

var (
	ErrNotFound        = errors.New("oid is not cached")
	ErrNotCacheable    = errors.New("cache values must be persistent objects or classes")
	ErrInvalidOID      = errors.New("invalid oid")
	ErrOIDMismatch     = errors.New("key must be the same as the object's oid")
	ErrOIDTaken        = errors.New("can not re-register object under a different oid")
	ErrForeignCache    = errors.New("cache values may only be in one cache")
	ErrNotGhost        = errors.New("object is not a ghost")
	ErrStillReferenced = errors.New("object is still referenced")
	ErrSweepInProgress = errors.New("unavailable during garbage collection")
	ErrSweepRunaway    = errors.New("sweep safety counter exceeded")
	ErrLostPosition    = errors.New("working position fell out of the ring")
	ErrInvalidConfig   = errors.New("invalid cache config")
)
