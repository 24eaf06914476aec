package dispatch

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ja-he/homecmd/internal/control/action"
)

// Slot identifies a binding point of a Dispatcher.
type Slot string

// Entry is a history entry, i.E. a record of a successfully executed action.
type Entry struct {
	ID         uuid.UUID
	Slot       Slot
	Action     action.Action
	Explain    string
	ExecutedAt time.Time
}

// String returns the entry's history listing line.
func (e Entry) String() string {
	return fmt.Sprintf("%s [%s] %s", e.ID.String()[:8], e.Slot, e.Explain)
}

// Dispatcher maps slots to actions and keeps a bounded undo history of the
// actions it executed.
//
// Every exported method holds the dispatcher's lock for its whole duration,
// including calls into actions. Actions must therefore not call back into the
// dispatcher.
type Dispatcher struct {
	mtx sync.Mutex

	slots   map[Slot]action.Action
	history *Ring[Entry]

	log      zerolog.Logger
	observer Observer
	now      func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithObserver registers an observer for dispatcher outcomes.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) { d.observer = o }
}

// WithClock overrides the clock used to timestamp history entries.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// New returns a dispatcher whose history holds at most capacity entries.
// A capacity below 1 is treated as 1.
func New(capacity int, logger zerolog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		slots:    make(map[Slot]action.Action),
		history:  NewRing[Entry](capacity),
		log:      logger.With().Str("component", "dispatcher").Logger(),
		observer: nopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Assign binds the action to the slot, replacing any previous binding.
// Assigning nil clears the slot.
func (d *Dispatcher) Assign(slot Slot, a action.Action) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if a == nil {
		d.log.Debug().Str("slot", string(slot)).Msg("clearing slot")
		delete(d.slots, slot)
		return
	}
	if prev, ok := d.slots[slot]; ok {
		d.log.Debug().Str("slot", string(slot)).Str("previous", prev.Explain()).Msg("reassigning slot")
	}
	d.slots[slot] = a
}

// ExecuteSlot performs the action bound to the slot and records it to
// history, evicting the oldest entry if the history is full.
//
// If the slot is unassigned, ErrSlotNotAssigned is returned. If the action
// fails, it is not recorded and an *OperationFault is returned. In both cases
// nothing changes.
func (d *Dispatcher) ExecuteSlot(slot Slot) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	a, ok := d.slots[slot]
	if !ok {
		d.log.Warn().Str("slot", string(slot)).Msgf("slot %s not assigned", slot)
		d.observer.ObserveExecute(OutcomeUnassigned)
		return fmt.Errorf("slot %s: %w", slot, ErrSlotNotAssigned)
	}

	if err := a.Do(); err != nil {
		fault := &OperationFault{Phase: PhaseApply, Slot: slot, Explain: a.Explain(), Err: err}
		d.log.Error().Err(err).Str("slot", string(slot)).Msgf("error executing command: %s", err.Error())
		d.observer.ObserveExecute(OutcomeFault)
		return fault
	}
	d.observer.ObserveExecute(OutcomeOK)

	if !a.Undoable() {
		d.log.Debug().Str("slot", string(slot)).Str("action", a.Explain()).Msg("not undoable, not recorded")
		return nil
	}

	entry := Entry{
		ID:         uuid.New(),
		Slot:       slot,
		Action:     a,
		Explain:    a.Explain(),
		ExecutedAt: d.now(),
	}
	if dropped, evicted := d.history.Push(entry); evicted {
		d.log.Debug().Str("evicted", dropped.Explain).Msg("history full, dropped oldest entry")
		d.observer.ObserveEviction()
	}
	d.observer.ObserveHistorySize(d.history.Len())
	return nil
}

// Undo pops the most recently executed action from history and reverts it.
//
// If there is no history, ErrHistoryEmpty is returned. If reverting fails, an
// *OperationFault is returned; the entry is dropped from history either way.
func (d *Dispatcher) Undo() error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	entry, ok := d.history.Pop()
	if !ok {
		d.log.Info().Msg("nothing to undo")
		d.observer.ObserveUndo(OutcomeEmpty)
		return ErrHistoryEmpty
	}
	d.observer.ObserveHistorySize(d.history.Len())

	if err := entry.Action.Undo(); err != nil {
		d.log.Error().Err(err).Str("slot", string(entry.Slot)).Msgf("error undoing command: %s", err.Error())
		d.observer.ObserveUndo(OutcomeFault)
		return &OperationFault{Phase: PhaseRevert, Slot: entry.Slot, Explain: entry.Explain, Err: err}
	}
	d.observer.ObserveUndo(OutcomeOK)
	return nil
}

// History returns the retained history entries, most recent last.
func (d *Dispatcher) History() []Entry {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.history.Items()
}

// ShowHistory logs the retained history, most recent last, and returns the
// logged entry lines.
func (d *Dispatcher) ShowHistory() []string {
	entries := d.History()

	d.log.Info().Msg("history (most recently executed last):")
	if len(entries) == 0 {
		d.log.Info().Msg("  (empty)")
		return []string{}
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
		d.log.Info().Str("id", e.ID.String()).Msg("  - " + lines[i])
	}
	return lines
}

// Lookup returns the action bound to the slot, if any.
func (d *Dispatcher) Lookup(slot Slot) (action.Action, bool) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	a, ok := d.slots[slot]
	return a, ok
}

// Slots returns all assigned slots in order.
func (d *Dispatcher) Slots() []Slot {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	result := make([]Slot, 0, len(d.slots))
	for slot := range d.slots {
		result = append(result, slot)
	}
	sort.Slice(result, func(i, j int) bool { return slotLess(result[i], result[j]) })
	return result
}

// Len returns the number of retained history entries.
func (d *Dispatcher) Len() int {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.history.Len()
}

// Cap returns the history capacity.
func (d *Dispatcher) Cap() int { return d.history.Cap() }

// slotLess orders shorter slots first, so that numeric slots sort
// numerically ("2" before "10").
func slotLess(a, b Slot) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
