package sse

import (
	"context"
	"log/slog"
	"time"
)

// KeepAliveWriter writes a keep-alive message (an SSE comment)
type KeepAliveWriter interface {
	WriteKeepAlive() error
}

// TickerKeepAlive sends keep-alive pings at a fixed interval until its
// context ends, Stop is called or a write fails
type TickerKeepAlive struct {
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewTickerKeepAlive creates a ticker-based keep-alive
func NewTickerKeepAlive(interval time.Duration) *TickerKeepAlive {
	return &TickerKeepAlive{
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the ping loop. A non-positive interval starts nothing.
func (k *TickerKeepAlive) Start(ctx context.Context, writer KeepAliveWriter, logger *slog.Logger) {
	if k.interval <= 0 {
		close(k.done)
		return
	}

	go func() {
		defer close(k.done)

		ticker := time.NewTicker(k.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := writer.WriteKeepAlive(); err != nil {
					logger.Debug("keep-alive write failed, stopping", "error", err)
					return
				}
			case <-k.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the ping loop and waits for it to exit. Safe to call more than once.
func (k *TickerKeepAlive) Stop() {
	select {
	case <-k.stop:
	default:
		close(k.stop)
	}
	<-k.done
}
