package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotNotAssigned is reported when executing a slot without binding.
	ErrSlotNotAssigned = errors.New("slot not assigned")
	// ErrHistoryEmpty is reported when undoing with an empty history.
	ErrHistoryEmpty = errors.New("nothing to undo")
)

// Phase names the operation during which an OperationFault occurred.
type Phase string

const (
	PhaseApply  Phase = "apply"
	PhaseRevert Phase = "revert"
)

// OperationFault is an error raised by an action's Do (PhaseApply) or Undo
// (PhaseRevert).
//
// A fault during apply means the action was not recorded to history; a fault
// during revert means the entry was dropped from history nonetheless.
type OperationFault struct {
	Phase   Phase
	Slot    Slot
	Explain string
	Err     error
}

func (f *OperationFault) Error() string {
	return fmt.Sprintf("%s of '%s' (slot %s) failed: %s", f.Phase, f.Explain, f.Slot, f.Err.Error())
}

func (f *OperationFault) Unwrap() error { return f.Err }
