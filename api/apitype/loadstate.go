package apitype

// LoadState tracks one stage (preview or full) of an image load.
// Transitions into Requested happen on the consumer thread when a task is
// enqueued; transitions into Ready or Failed happen when the matching
// result is drained and applied.
type LoadState int

const (
	LoadStateNotRequested LoadState = iota
	LoadStateRequested
	LoadStateReady
	LoadStateFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadStateNotRequested:
		return "NotRequested"
	case LoadStateRequested:
		return "Requested"
	case LoadStateReady:
		return "Ready"
	case LoadStateFailed:
		return "Failed"
	}
	return "Unknown"
}
