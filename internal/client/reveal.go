package client

import (
	"context"
	"time"
)

// Reveal simulates streaming of text that is already complete. onUpdate
// receives a growing prefix, step runes longer each time, one call per
// interval, ending with the full text. It returns ctx.Err() if cancelled
// before the last update.
func Reveal(ctx context.Context, text string, step int, interval time.Duration, onUpdate func(string)) error {
	if onUpdate == nil {
		return ctx.Err()
	}
	runes := []rune(text)
	if step <= 0 || len(runes) == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		onUpdate(text)
		return nil
	}

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for shown := 0; shown < len(runes); {
		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		shown = min(shown+step, len(runes))
		onUpdate(string(runes[:shown]))
	}
	return nil
}
