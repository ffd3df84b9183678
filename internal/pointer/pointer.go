// Package pointer produces the stream of pointer positions the hover loop
// consumes. There is no portable cursor API, so the OS-specific source lives
// behind the Source interface with platform files supplying it.
package pointer

import (
	"context"
	"errors"
	"time"
)

// ErrUnsupported is returned on platforms without a pointer source.
var ErrUnsupported = errors.New("pointer tracking not supported on this platform")

// Position is the cursor location in virtual screen coordinates.
type Position struct {
	X, Y int
}

// Source reports the current pointer position.
type Source interface {
	Position() (Position, error)
}

// Poll reads src at the given interval and hands each reading to fn until ctx
// is done. Deduplication happens downstream in the input loop, so every
// reading is forwarded.
func Poll(ctx context.Context, src Source, interval time.Duration, fn func(Position)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			pos, err := src.Position()
			if err != nil {
				return err
			}
			fn(pos)
		}
	}
}
