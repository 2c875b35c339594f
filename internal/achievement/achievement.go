// Package achievement evaluates the fixed milestone rules against the habit
// collection. Unlocks are monotonic: once a rule fires, the achievement stays
// unlocked and is never re-evaluated.
package achievement

import (
	"time"

	"github.com/brk3/streaks/internal/dateutil"
	"github.com/brk3/streaks/pkg/habit"
)

// Definitions is the fixed achievement table, in display order.
var Definitions = []habit.Achievement{
	{ID: habit.FirstHabit, Title: "Getting Started", Description: "Create your first habit", Icon: "🌱"},
	{ID: habit.WeekStreak, Title: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥"},
	{ID: habit.MonthStreak, Title: "Monthly Master", Description: "Maintain a 30-day streak", Icon: "👑"},
	{ID: habit.HundredCompletions, Title: "Century Club", Description: "Complete 100 habit instances", Icon: "💯"},
	{ID: habit.FiveHabits, Title: "Habit Collector", Description: "Track 5 different habits", Icon: "📚"},
	{ID: habit.PerfectWeek, Title: "Perfect Week", Description: "Complete all habits for 7 consecutive days", Icon: "⭐"},
	{ID: habit.EarlyBird, Title: "Early Bird", Description: "Complete habits 10 days in a row", Icon: "🐦"},
	{ID: habit.ConsistencyKing, Title: "Consistency King", Description: "Achieve 90% consistency for a month", Icon: "👑"},
}

// Evaluate merges the previous record with the definition table and unlocks
// any rule that now holds, stamping unlockedAt with today's date. Entries
// missing from prev default to locked; ids prev contains that the table does
// not are dropped.
func Evaluate(habits []habit.Habit, prev []habit.Achievement, now time.Time) []habit.Achievement {
	today := dateutil.Today(now)

	prevByID := make(map[habit.AchievementID]habit.Achievement, len(prev))
	for _, a := range prev {
		prevByID[a.ID] = a
	}

	out := make([]habit.Achievement, 0, len(Definitions))
	for _, def := range Definitions {
		a := def
		if p, ok := prevByID[def.ID]; ok && p.Unlocked {
			a.Unlocked = true
			a.UnlockedAt = p.UnlockedAt
		}
		if !a.Unlocked && unlocked(a.ID, habits, now) {
			a.Unlocked = true
			a.UnlockedAt = today
		}
		out = append(out, a)
	}
	return out
}

func unlocked(id habit.AchievementID, habits []habit.Habit, now time.Time) bool {
	switch id {
	case habit.FirstHabit:
		return len(habits) >= 1
	case habit.WeekStreak:
		return maxBestStreak(habits) >= 7
	case habit.MonthStreak:
		return maxBestStreak(habits) >= 30
	case habit.HundredCompletions:
		return totalCompletions(habits) >= 100
	case habit.FiveHabits:
		return len(habits) >= 5
	case habit.PerfectWeek:
		return perfectWeek(habits, now)
	case habit.EarlyBird:
		return maxBestStreak(habits) >= 10
	case habit.ConsistencyKing:
		return consistentMonth(habits, now)
	}
	return false
}

func maxBestStreak(habits []habit.Habit) int {
	best := 0
	for _, h := range habits {
		if h.BestStreak > best {
			best = h.BestStreak
		}
	}
	return best
}

func totalCompletions(habits []habit.Habit) int {
	total := 0
	for _, h := range habits {
		total += h.TotalCompletions()
	}
	return total
}

// perfectWeek holds when every habit has a completion on each of the last 7
// days including today. Vacuously false with no habits.
func perfectWeek(habits []habit.Habit, now time.Time) bool {
	if len(habits) == 0 {
		return false
	}
	for _, day := range dateutil.Range(now, 7) {
		for _, h := range habits {
			if h.Completions[day] == 0 {
				return false
			}
		}
	}
	return true
}

// consistentMonth holds when at least 90% of the last 30 days saw a
// completion from any habit.
func consistentMonth(habits []habit.Habit, now time.Time) bool {
	if len(habits) == 0 {
		return false
	}
	days := 0
	for _, day := range dateutil.Range(now, 30) {
		for _, h := range habits {
			if h.Completions[day] > 0 {
				days++
				break
			}
		}
	}
	return float64(days)/30 >= 0.9
}
