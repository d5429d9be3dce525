package runner

// State is the lifecycle phase of a Runner.
type State int

const (
	// Idle is the initial state, before Start.
	Idle State = iota
	// Running means the child has been handed to the background goroutine.
	Running
	// CancelRequested means Cancel was called while Running; the child may
	// still be shutting down.
	CancelRequested
	// Terminated is the final state: the child exited or never spawned.
	// A Runner never leaves Terminated.
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case CancelRequested:
		return "cancel_requested"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Observer receives supervisor output. OnLine is called once per output
// line in the order the child produced it; OnExit is called exactly once,
// after the last line. Both run on the supervisor's background goroutine,
// so implementations must not touch UI state directly; enqueue and
// return.
type Observer interface {
	OnLine(line string)
	OnExit(code int)
}

type nopObserver struct{}

func (nopObserver) OnLine(string) {}
func (nopObserver) OnExit(int)    {}
