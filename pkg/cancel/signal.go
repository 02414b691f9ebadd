// Package cancel wraps a Solve call with SIGINT/SIGTERM-triggered
// cancellation. The coordinator itself offers no cancellation; a caller that
// wants one wraps the top-level call with WithSignals.
package cancel

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// WithSignals derives a child context from parent that is cancelled the
// first time the process receives SIGINT or SIGTERM. The returned stop func
// releases the signal handler and must be called once the guarded work
// completes, typically via defer.
func WithSignals(parent context.Context, log zerolog.Logger) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			log.Warn().Str("signal", sig.String()).Msg("cancellation signal received, stopping after current phase")
			cancel()
		case <-done:
		}
	}()

	return ctx, func() {
		close(done)
		signal.Stop(sigCh)
		cancel()
	}
}
