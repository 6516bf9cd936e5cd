package db

import "github.com/Borislavv/go-ghost-cache/model"

// Entry is a cached binding from an oid to either a class placeholder or an instance shell.
// Instance entries carry the handle of their ring node while the shell is active.
type Entry struct {
	oid   model.OID
	class model.Class
	obj   model.Persistent
	node  Handle
}

func (e *Entry) OID() model.OID             { return e.oid }
func (e *Entry) IsClass() bool              { return e.class != nil }
func (e *Entry) Class() model.Class         { return e.class }
func (e *Entry) Instance() model.Persistent { return e.obj }
func (e *Entry) Linked() bool               { return e.node != Home }
func (e *Entry) Node() Handle               { return e.node }

// Payload returns whatever the entry binds the oid to.
func (e *Entry) Payload() model.Object {
	if e.class != nil {
		return e.class
	}
	return e.obj
}
