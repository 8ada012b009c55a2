package tasks

import (
	"context"
)

// newSessionStatsTask creates the scheduled task that reports session store
// occupancy. Sessions are volatile and never expire, so the periodic report
// is how operators watch in-memory growth over a long process lifetime.
func newSessionStatsTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "session_stats")

	return func(ctx context.Context) error {
		sessions, turns := deps.Sessions.Stats()
		log.InfoContext(ctx, "Session store stats", "sessions", sessions, "retained_turns", turns)
		return nil
	}
}
