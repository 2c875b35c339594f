package tracker

import (
	"github.com/brk3/streaks/internal/dateutil"
	"github.com/brk3/streaks/pkg/habit"
)

// streakEndingAt counts consecutive completed days walking backward from
// day, inclusive. A day counts while its completion count is positive.
func streakEndingAt(completions map[string]int, day string) int {
	streak := 0
	for completions[day] > 0 {
		streak++
		day = dateutil.PrevKey(day)
	}
	return streak
}

// recomputeStreaks refreshes the derived streak fields after a completion
// mutation. CurrentStreak must include today: a habit not completed today has
// a current streak of zero no matter what happened yesterday. BestStreak is
// the longest run ending at any completed day, clamped so it never falls
// below CurrentStreak.
func recomputeStreaks(h *habit.Habit, today string) {
	h.CurrentStreak = streakEndingAt(h.Completions, today)

	best := 0
	for day := range h.Completions {
		if run := streakEndingAt(h.Completions, day); run > best {
			best = run
		}
	}
	if h.CurrentStreak > best {
		best = h.CurrentStreak
	}
	h.BestStreak = best
}
