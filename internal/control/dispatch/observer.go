package dispatch

// Outcomes reported to an Observer.
const (
	OutcomeOK         = "ok"
	OutcomeFault      = "fault"
	OutcomeUnassigned = "unassigned"
	OutcomeEmpty      = "empty"
)

// Observer is notified of the outcome of every dispatcher operation, e.g. to
// keep metrics.
type Observer interface {
	ObserveExecute(outcome string)
	ObserveUndo(outcome string)
	ObserveEviction()
	ObserveHistorySize(size int)
}

type nopObserver struct{}

func (nopObserver) ObserveExecute(string)  {}
func (nopObserver) ObserveUndo(string)     {}
func (nopObserver) ObserveEviction()       {}
func (nopObserver) ObserveHistorySize(int) {}
