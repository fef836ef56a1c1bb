package webview2

// Status is the final state of an Ensure run.
type Status int

const (
	StatusSuccess Status = iota
	StatusDeclined
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusDeclined:
		return "declined"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes what Ensure did. The error returned next to it is nil
// exactly when Status is StatusSuccess.
type Result struct {
	Status Status

	// Version is the runtime version reported by the probe, when known.
	Version string

	// AlreadyInstalled is set when no install was attempted.
	AlreadyInstalled bool

	// Attempts counts installer runs, including the fallback.
	Attempts int

	// Elevated reports whether the successful attempt was the elevated one.
	Elevated bool
}
