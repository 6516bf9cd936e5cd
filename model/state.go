package model

// State is the liveness state of an instance shell.
// Any state other than Ghost is active: the object's fields are materialized
// and the shell is threaded on its cache's ring.
type State int8

const (
	Ghost    State = -1
	UpToDate State = 0
	Changed  State = 1
	Sticky   State = 2
)

// Active reports whether the shell holds materialized state.
func (s State) Active() bool { return s >= UpToDate }

func (s State) String() string {
	switch s {
	case Ghost:
		return "ghost"
	case UpToDate:
		return "up_to_date"
	case Changed:
		return "changed"
	case Sticky:
		return "sticky"
	default:
		return "unknown"
	}
}
