package game

import "context"

// Host is the window system the driver runs inside.
type Host interface {
	ShouldClose() bool
	// Present shows the frame just drawn.
	Present()
	// PollEvents delivers pending input callbacks.
	PollEvents()
}

// Run ticks d until the host wants to close or ctx is cancelled. Each
// iteration ticks, presents, polls input and then waits for the limiter.
// It returns ctx.Err() when cancelled.
func Run(ctx context.Context, host Host, d *Driver, limiter *FPSLimiter) error {
	for !host.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.Tick()
		host.Present()
		host.PollEvents()

		if limiter != nil {
			limiter.Wait()
		}
	}
	return nil
}
