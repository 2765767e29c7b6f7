package transport

// ReadyState is the lifecycle stage of a Handle.
type ReadyState int

const (
	Unsent ReadyState = iota
	Opened
	HeadersReceived
	Loading
	Done
)

// String returns a human-readable representation of the state.
func (s ReadyState) String() string {
	switch s {
	case Unsent:
		return "Unsent"
	case Opened:
		return "Opened"
	case HeadersReceived:
		return "HeadersReceived"
	case Loading:
		return "Loading"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}
