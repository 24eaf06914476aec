// Package action contains the invocable units that slots are bound to.
//
// An Action is the command abstraction: something that can be done and,
// optionally, undone again. Plain device bindings (Reversible), one-shot
// actions (Simple) and macros (Composite) all satisfy the same interface, so
// composites can contain composites without special-casing.
package action

// Action is an operation that can be performed and, if undoable, reverted.
type Action interface {
	// Do performs the action.
	Do() error

	// Undo reverts a previous Do.
	// Calling Undo on an action that is not Undoable has no effect.
	Undo() error
	Undoable() bool

	// Explain returns a short human-readable identification of the action,
	// e.g. for history listings.
	Explain() string
}
