package live

import "context"

// Input is one event from the producer side: the pointer hook or the toggle
// hotkey. Producers push into a bounded channel with Send; one consumer
// drains it with Consume, so session mutation stays single-threaded even
// though production is concurrent.
type Input interface {
	isInput()
}

// PointerInput is a pointer position in virtual screen coordinates.
type PointerInput struct {
	X, Y float64
}

func (PointerInput) isInput() {}

// ToggleInput requests a session toggle.
type ToggleInput struct{}

func (ToggleInput) isInput() {}

// Send offers in to the bounded queue without blocking. Returns false when
// the queue is full and the input was dropped; pointer positions are
// perishable, so dropping under load is the correct behavior.
func Send(ch chan<- Input, in Input) bool {
	select {
	case ch <- in:
		return true
	default:
		return false
	}
}

// Consume drains inputs serially until ctx is done or the channel closes.
// Consecutive identical pointer positions are dropped before they reach the
// session.
func (s *Session) Consume(ctx context.Context, inputs <-chan Input) error {
	var last PointerInput
	var havePointer bool
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-inputs:
			if !ok {
				return nil
			}
			switch ev := in.(type) {
			case ToggleInput:
				s.Toggle(ctx)
			case PointerInput:
				if havePointer && ev == last {
					continue
				}
				last, havePointer = ev, true
				s.PointerMoved(ev.X, ev.Y)
			}
		}
	}
}
