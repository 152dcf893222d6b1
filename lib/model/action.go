package model

type ActionOperation int

const (
	UnknownOperation ActionOperation = iota
	AddOperation
	RemoveOperation
)

func (o ActionOperation) String() string {
	switch o {
	case AddOperation:
		return "add"
	case RemoveOperation:
		return "remove"
	default:
		return "unknown"
	}
}

func ParseActionOperation(s string) (ActionOperation, bool) {
	switch s {
	case "add":
		return AddOperation, true
	case "remove":
		return RemoveOperation, true
	default:
		return UnknownOperation, false
	}
}

// ActionRequest is a requested change to a .stignore file, as received from
// clients. Operation and Kind are kept as text so validation can happen when the
// whole batch is applied.
type ActionRequest struct {
	Operation string
	Kind      string
	Name      string
}

const DeleteOperation = "delete"

type PendingAction struct {
	Name          string
	Path          string
	Operation     string
	SizeBytes     int64
	SizeMegabytes float64
}

// ConfirmedAction is a pending action as sent back by a client to confirm a
// flush. Missing fields are nil and never match.
type ConfirmedAction struct {
	Name          *string
	Path          *string
	Operation     *string
	SizeMegabytes *float64
}

func (c *ConfirmedAction) Matches(a *PendingAction) bool {
	return c.Name != nil && *c.Name == a.Name &&
		c.Path != nil && *c.Path == a.Path &&
		c.Operation != nil && *c.Operation == a.Operation &&
		c.SizeMegabytes != nil && *c.SizeMegabytes == a.SizeMegabytes
}

func ConfirmationFor(a *PendingAction) ConfirmedAction {
	name := a.Name
	path := a.Path
	op := a.Operation
	size := a.SizeMegabytes

	return ConfirmedAction{
		Name:          &name,
		Path:          &path,
		Operation:     &op,
		SizeMegabytes: &size,
	}
}
