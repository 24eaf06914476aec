package action

// Reversible is an undoable action binding a forward operation to its exact
// logical inverse.
//
// It holds no state beyond the binding, so calling Do twice performs the
// forward operation twice.
type Reversible struct {
	name    string
	forward func() error
	reverse func() error
}

// NewReversible returns a reversible action that calls forward on Do and
// reverse on Undo.
func NewReversible(name string, forward, reverse func() error) *Reversible {
	return &Reversible{
		name:    name,
		forward: forward,
		reverse: reverse,
	}
}

// Do performs the forward operation.
func (r *Reversible) Do() error { return r.forward() }

// Undo performs the reverse operation.
func (r *Reversible) Undo() error { return r.reverse() }

// Undoable always returns true.
func (r *Reversible) Undoable() bool { return true }

// Explain returns the name the action was created with.
func (r *Reversible) Explain() string { return r.name }
