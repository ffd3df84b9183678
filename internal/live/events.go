// Package live ties pointer movement, character segmentation and dictionary
// lookup together: the session state machine, the hover tracker and the
// outward event surface.
package live

import "github.com/f3rmion/liveocr/internal/dict"

// State is the session lifecycle state. The wire strings match what the
// presentation layer subscribes to.
type State int

const (
	StateDisabled State = iota
	StateCapturing
	StateReady
)

func (s State) String() string {
	switch s {
	case StateCapturing:
		return "detecting"
	case StateReady:
		return "enabled"
	default:
		return "disabled"
	}
}

// Event is one outward notification. Events are fire-and-forget: nothing
// waits on the consumer and nothing is retried.
type Event interface {
	Name() string
}

// StateChanged reports a session lifecycle transition.
type StateChanged struct {
	State State
}

func (StateChanged) Name() string { return "state-changed" }

// OcrChanged carries the texts of the current blocks; empty on teardown.
type OcrChanged struct {
	Texts []string
}

func (OcrChanged) Name() string { return "ocr-changed" }

// DefinitionsChanged carries the entries for the current hover; empty when
// the hover cleared.
type DefinitionsChanged struct {
	Entries []dict.Entry
}

func (DefinitionsChanged) Name() string { return "definitions-changed" }
