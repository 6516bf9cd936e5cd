package model

// Item is an (oid, object) pair of an active instance, as listed in ring order.
type Item struct {
	OID    OID
	Object Persistent
}

// ClassItem is an (oid, class) pair of a registered class placeholder.
type ClassItem struct {
	OID   OID
	Class Class
}
