package action

import (
	"errors"
	"fmt"
	"strings"
)

// Composite is an ordered group of actions treated as a single action.
//
// Do performs the members in order, Undo reverts them in reverse order, so
// the most recent effect is always retired first.
//
// NOTE:
//
//	Do is not atomic. If a member fails, the members before it stay applied
//	and the error is returned as is. Wrap with RollbackOnFailure if that is
//	not acceptable.
type Composite struct {
	name    string
	members []Action
}

// NewComposite returns a composite of the given members.
// The members are shared, not copied; an empty composite is a no-op.
func NewComposite(name string, members ...Action) *Composite {
	m := make([]Action, len(members))
	copy(m, members)
	return &Composite{name: name, members: m}
}

// Do performs all members in order, stopping at the first failure.
func (c *Composite) Do() error {
	for i, member := range c.members {
		if err := member.Do(); err != nil {
			return fmt.Errorf("%s step %d (%s): %w", c.Explain(), i, member.Explain(), err)
		}
	}
	return nil
}

// Undo reverts all members in reverse order, stopping at the first failure.
func (c *Composite) Undo() error {
	for i := len(c.members) - 1; i >= 0; i-- {
		if err := c.members[i].Undo(); err != nil {
			return fmt.Errorf("undo %s step %d (%s): %w", c.Explain(), i, c.members[i].Explain(), err)
		}
	}
	return nil
}

// Undoable is true if every member is undoable.
func (c *Composite) Undoable() bool {
	for _, member := range c.members {
		if !member.Undoable() {
			return false
		}
	}
	return true
}

// Explain returns the composite's name, or a listing of its members if it
// is unnamed.
func (c *Composite) Explain() string {
	if c.name != "" {
		return c.name
	}
	names := make([]string, len(c.members))
	for i, member := range c.members {
		names[i] = member.Explain()
	}
	return "MacroCommand[" + strings.Join(names, ", ") + "]"
}

// Members returns the members of the composite in order.
func (c *Composite) Members() []Action {
	m := make([]Action, len(c.members))
	copy(m, c.members)
	return m
}

// RollbackOnFailure returns an action that behaves like c, except that a
// failure during Do reverts the members already performed (in reverse order)
// before returning.
func RollbackOnFailure(c *Composite) Action {
	return &rollbackComposite{Composite: c}
}

type rollbackComposite struct {
	*Composite
}

func (r *rollbackComposite) Do() error {
	for i, member := range r.members {
		err := member.Do()
		if err == nil {
			continue
		}

		errs := []error{fmt.Errorf("%s step %d (%s): %w", r.Explain(), i, member.Explain(), err)}
		for j := i - 1; j >= 0; j-- {
			if undoErr := r.members[j].Undo(); undoErr != nil {
				errs = append(errs, fmt.Errorf("rollback step %d (%s): %w", j, r.members[j].Explain(), undoErr))
			}
		}
		return errors.Join(errs...)
	}
	return nil
}
