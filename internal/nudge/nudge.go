// Package nudge sends a reminder for habits whose streak would break at
// midnight: completed yesterday, not yet completed today.
package nudge

import (
	"context"
	"time"

	"github.com/brk3/streaks/internal/dateutil"
	"github.com/brk3/streaks/internal/logger"
	"github.com/brk3/streaks/pkg/habit"
)

// AtRisk returns the names of habits with a live run through yesterday and
// nothing recorded today.
func AtRisk(habits []habit.Habit, now time.Time) []string {
	today := dateutil.Today(now)
	yesterday := dateutil.DaysAgo(now, 1)

	var names []string
	for _, h := range habits {
		if h.Completions[today] == 0 && h.Completions[yesterday] > 0 {
			names = append(names, h.Name)
		}
	}
	return names
}

// Run queries the collection and nudges if any streaks are at risk.
func Run(ctx context.Context, q Querier, n Notifier, now time.Time) error {
	habits, err := q.ListHabits(ctx)
	if err != nil {
		return err
	}

	atRisk := AtRisk(habits, now)
	if len(atRisk) == 0 {
		logger.Debug("No streaks at risk, skipping nudge")
		return nil
	}

	logger.Info("Sending nudge", "habits", atRisk)
	return n.SendNudge(atRisk)
}
