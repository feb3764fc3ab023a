package tetra

import (
	"context"
	"time"
)

// RunnerStats provides execution statistics for the ticks a runner drove.
// Durations measure wall time spent inside Tick.
type RunnerStats struct {
	Ticks        int64
	MinDuration  time.Duration
	MaxDuration  time.Duration
	AvgDuration  time.Duration
	LastDuration time.Duration
	TotalDuration time.Duration
}

// Runner drives a session with intents from a Controller, either one step at
// a time or on a wall-clock ticker.
type Runner struct {
	session    *Session
	controller Controller
	notify     func(TickResult)

	ticks    int64
	minDur   time.Duration
	maxDur   time.Duration
	lastDur  time.Duration
	totalDur time.Duration
}

// NewRunner creates a runner for the session using the given controller.
func NewRunner(session *Session, controller Controller) *Runner {
	return &Runner{
		session:    session,
		controller: controller,
		minDur:     time.Duration(1<<63 - 1),
	}
}

// OnResult registers a callback invoked with every tick's result, for
// presentation layers that consume notifications.
func (r *Runner) OnResult(fn func(TickResult)) {
	r.notify = fn
}

// Session returns the session being driven.
func (r *Runner) Session() *Session {
	return r.session
}

// Step advances the session by dt once with the controller's intents.
func (r *Runner) Step(dt time.Duration) TickResult {
	start := time.Now()
	res := r.session.Tick(dt, r.controller.Plan(r.session))
	duration := time.Since(start)

	r.ticks++
	r.lastDur = duration
	r.totalDur += duration
	if duration < r.minDur {
		r.minDur = duration
	}
	if duration > r.maxDur {
		r.maxDur = duration
	}

	if r.notify != nil {
		r.notify(res)
	}
	return res
}

// Run steps the session repeatedly at the given interval with measured
// deltas until the context is cancelled or the game ends.
func (r *Runner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			if r.Step(dt).GameOver {
				return
			}
		}
	}
}

// Stats returns statistics about the ticks driven so far.
func (r *Runner) Stats() RunnerStats {
	stats := RunnerStats{
		Ticks:         r.ticks,
		MinDuration:   r.minDur,
		MaxDuration:   r.maxDur,
		LastDuration:  r.lastDur,
		TotalDuration: r.totalDur,
	}
	if r.ticks > 0 {
		stats.AvgDuration = r.totalDur / time.Duration(r.ticks)
	}
	return stats
}
