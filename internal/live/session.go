package live

import (
	"context"
	"log/slog"
	"sync"

	"github.com/f3rmion/liveocr/internal/capture"
	"github.com/f3rmion/liveocr/internal/dict"
	"github.com/f3rmion/liveocr/internal/geom"
	"github.com/f3rmion/liveocr/internal/segment"
)

// Recorder persists hover lookups. Satisfied by history.Store.
type Recorder interface {
	Record(word string, matches int) error
}

// Session is the single mutable unit of state: toggle transitions, the
// current blocks and the hover. All mutation goes through Toggle,
// PointerMoved and the capture completion; everything serializes on one
// read/write lock. The lock is never held across the capture pipeline.
type Session struct {
	pipeline   Pipeline
	pointerPos func() (x, y int, err error)
	monitorAt  func(x, y int) (capture.Monitor, error)
	recorder   Recorder
	events     chan Event

	mu          sync.RWMutex
	state       State
	monitor     *capture.Monitor
	blocks      []segment.Block
	definitions []dict.Entry
	tracker     *Tracker
	lastPointer geom.Point
}

// Option configures a Session.
type Option func(*Session)

// WithPointerPosition sets the resolver used to read the pointer when
// toggling on and when seeding the hover after capture.
func WithPointerPosition(fn func() (int, int, error)) Option {
	return func(s *Session) { s.pointerPos = fn }
}

// WithMonitorResolver overrides monitor resolution (tests).
func WithMonitorResolver(fn func(x, y int) (capture.Monitor, error)) Option {
	return func(s *Session) { s.monitorAt = fn }
}

// WithRecorder enables lookup history.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// NewSession returns a disabled session.
func NewSession(d *dict.Dictionary, p Pipeline, opts ...Option) *Session {
	s := &Session{
		pipeline:  p,
		monitorAt: capture.FromPoint,
		tracker:   NewTracker(d),
		events:    make(chan Event, 16),
		state:     StateDisabled,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Events is the outward notification stream. Sends never block; events are
// dropped with a warning when the consumer lags.
func (s *Session) Events() <-chan Event { return s.events }

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Definitions returns the entries for the current hover.
func (s *Session) Definitions() []dict.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.definitions
}

// Texts returns the text of every current block.
func (s *Session) Texts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return blockTexts(s.blocks)
}

// Toggle flips the session. Off to on resolves the monitor under the pointer
// and starts the capture pipeline on its own goroutine; any state but
// disabled tears down to disabled, including mid-capture (the in-flight
// result is discarded when it lands).
func (s *Session) Toggle(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateDisabled {
		s.state = StateDisabled
		s.monitor = nil
		s.blocks = nil
		s.definitions = nil
		s.tracker.Reset()
		s.mu.Unlock()
		s.emit(StateChanged{State: StateDisabled})
		s.emit(OcrChanged{})
		return
	}
	s.mu.Unlock()

	x, y, err := s.readPointer()
	if err != nil {
		slog.Error("reading pointer position", "err", err)
		return
	}
	mon, err := s.monitorAt(x, y)
	if err != nil {
		slog.Error("resolving monitor", "err", err)
		return
	}

	s.mu.Lock()
	if s.state != StateDisabled {
		s.mu.Unlock()
		return
	}
	s.state = StateCapturing
	s.monitor = &mon
	s.lastPointer = geom.Point{X: float64(x), Y: float64(y)}
	s.mu.Unlock()

	s.emit(StateChanged{State: StateCapturing})
	go func() {
		blocks, err := s.pipeline.Run(ctx, mon)
		s.applyCapture(blocks, err)
	}()
}

// applyCapture lands the pipeline result. Computed entirely outside the
// lock; applied inside a short critical section, and only if the session is
// still capturing (toggling off mid-flight discards the result).
func (s *Session) applyCapture(blocks []segment.Block, err error) {
	if err == nil {
		// Seed the hover from wherever the pointer is now.
		if x, y, perr := s.readPointer(); perr == nil {
			s.mu.Lock()
			s.lastPointer = geom.Point{X: float64(x), Y: float64(y)}
			s.mu.Unlock()
		}
	}

	s.mu.Lock()
	if s.state != StateCapturing {
		s.mu.Unlock()
		slog.Debug("discarding capture result, session no longer capturing")
		return
	}
	if err != nil {
		// Capture failure reverts to disabled rather than leaving an
		// enabled session with no data.
		s.state = StateDisabled
		s.monitor = nil
		s.mu.Unlock()
		slog.Error("capture pipeline failed", "err", err)
		s.emit(StateChanged{State: StateDisabled})
		return
	}
	s.state = StateReady
	s.blocks = blocks
	texts := blockTexts(blocks)
	upd := s.tracker.Move(blocks, s.lastPointer)
	if upd.Changed {
		s.definitions = upd.Entries
	}
	s.mu.Unlock()

	slog.Info("capture complete", "blocks", len(blocks))
	s.emit(OcrChanged{Texts: texts})
	s.emit(StateChanged{State: StateReady})
	if upd.Changed {
		s.record(upd)
		s.emit(DefinitionsChanged{Entries: upd.Entries})
	}
}

// PointerMoved evaluates one pointer position. Ignored unless the session is
// ready with blocks; no-op updates (same glyph, or already cleared) emit
// nothing.
func (s *Session) PointerMoved(x, y float64) {
	pt := geom.Point{X: x, Y: y}

	s.mu.Lock()
	if s.state != StateReady || len(s.blocks) == 0 {
		s.mu.Unlock()
		return
	}
	s.lastPointer = pt
	upd := s.tracker.Move(s.blocks, pt)
	if !upd.Changed {
		s.mu.Unlock()
		return
	}
	s.definitions = upd.Entries
	s.mu.Unlock()

	s.record(upd)
	s.emit(DefinitionsChanged{Entries: upd.Entries})
}

func (s *Session) readPointer() (int, int, error) {
	if s.pointerPos == nil {
		return 0, 0, nil
	}
	return s.pointerPos()
}

func (s *Session) record(upd Update) {
	if s.recorder == nil || upd.Hover == nil || upd.Run == "" {
		return
	}
	if err := s.recorder.Record(upd.Run, len(upd.Entries)); err != nil {
		slog.Warn("recording lookup", "word", upd.Run, "err", err)
	}
}

func (s *Session) emit(ev Event) {
	select {
	case s.events <- ev:
	default:
		slog.Warn("event dropped, consumer lagging", "event", ev.Name())
	}
}

func blockTexts(blocks []segment.Block) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Text)
	}
	return out
}
