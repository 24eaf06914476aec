// Package dispatch provides the Dispatcher, which binds actions to slots,
// executes them on demand, and keeps a bounded history of executed actions
// for undo.
//
// # Slots
//
// A Slot is an addressable binding point, comparable to a programmable button
// on a remote. Assigning to a slot replaces any previous binding.
//
// # History
//
// Every successfully executed undoable action is pushed onto a fixed-capacity
// Ring. Once the ring is full, each push evicts the oldest entry. Undo pops the
// most recent entry and reverts it; a popped entry is never pushed back, even
// if reverting it fails.
//
//	d := dispatch.New(10, logger)
//	d.Assign("1", device.LightOn(light))
//	_ = d.ExecuteSlot("1") // LivingRoom: ON
//	_ = d.Undo()           // LivingRoom: OFF
//
// # Errors
//
// ExecuteSlot and Undo report ErrSlotNotAssigned, ErrHistoryEmpty and
// *OperationFault. None of them are fatal and all of them are logged at the
// dispatcher boundary as well.
package dispatch
