package ghostcache

import (
	"github.com/Borislavv/go-ghost-cache/internal/cache"
	"github.com/Borislavv/go-ghost-cache/internal/cache/db"
)

var (
	ErrNotFound        = cache.ErrNotFound
	ErrNotCacheable    = cache.ErrNotCacheable
	ErrInvalidOID      = cache.ErrInvalidOID
	ErrOIDMismatch     = cache.ErrOIDMismatch
	ErrOIDTaken        = cache.ErrOIDTaken
	ErrForeignCache    = cache.ErrForeignCache
	ErrNotGhost        = cache.ErrNotGhost
	ErrStillReferenced = cache.ErrStillReferenced
	ErrSweepInProgress = cache.ErrSweepInProgress
	ErrSweepRunaway    = cache.ErrSweepRunaway
	ErrLostPosition    = cache.ErrLostPosition
	ErrInvalidConfig   = cache.ErrInvalidConfig
	ErrRingCorrupted   = db.ErrRingCorrupted
)

// RingError carries the failed check code of a corrupted ring.
type RingError = db.RingError
