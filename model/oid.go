package model

// OID is the stable identifier of a persistent object within its owning cache.
type OID string

// Everything is the invalidation sentinel meaning "every cached oid".
// It is never a valid object identifier.
const Everything OID = ""

func (o OID) IsValid() bool { return o != Everything }
