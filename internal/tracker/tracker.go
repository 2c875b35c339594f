// Package tracker owns the habit collection. Every mutation recomputes the
// mutated habit's streaks, persists the collection, and re-evaluates
// achievements, so readers always observe consistent derived state.
package tracker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/brk3/streaks/internal/achievement"
	"github.com/brk3/streaks/internal/clock"
	"github.com/brk3/streaks/internal/dateutil"
	"github.com/brk3/streaks/internal/logger"
	"github.com/brk3/streaks/internal/storage"
	"github.com/brk3/streaks/pkg/habit"
)

type Tracker struct {
	store        storage.Store
	clock        clock.Clock
	habits       []habit.Habit
	achievements []habit.Achievement
}

// Open loads persisted state and brings the achievement record up to date.
// Load failures are logged and treated as empty state; the slot is not
// overwritten until the first successful mutation.
func Open(store storage.Store, clk clock.Clock) *Tracker {
	t := &Tracker{store: store, clock: clk}

	habits, err := store.LoadHabits()
	if err != nil {
		logger.Error("Failed to load habits, starting empty", "error", err)
	}
	t.habits = habits

	prev, err := store.LoadAchievements()
	if err != nil {
		logger.Error("Failed to load achievements, starting locked", "error", err)
	}
	t.achievements = achievement.Evaluate(t.habits, prev, clk.Now())
	t.saveAchievements()

	return t
}

// Habits returns a copy of the collection; callers never see internal state.
func (t *Tracker) Habits() []habit.Habit {
	out := make([]habit.Habit, len(t.habits))
	copy(out, t.habits)
	return out
}

func (t *Tracker) Achievements() []habit.Achievement {
	out := make([]habit.Achievement, len(t.achievements))
	copy(out, t.achievements)
	return out
}

// Get finds a habit by id.
func (t *Tracker) Get(id string) (habit.Habit, bool) {
	for _, h := range t.habits {
		if h.ID == id {
			return h, true
		}
	}
	return habit.Habit{}, false
}

// Add creates a habit with a fresh id, empty completions and zero streaks.
// A blank name is a no-op: name validation belongs to the input boundary,
// the store just refuses to create the record.
func (t *Tracker) Add(name, emoji string, category habit.Category, weeklyGoal, monthlyGoal int) (habit.Habit, bool) {
	if strings.TrimSpace(name) == "" {
		return habit.Habit{}, false
	}
	if !category.Valid() {
		category = habit.CategoryOther
	}

	h := habit.Habit{
		ID:          uuid.NewString(),
		Name:        name,
		Emoji:       emoji,
		Category:    category,
		CreatedAt:   dateutil.Today(t.clock.Now()),
		Completions: map[string]int{},
		WeeklyGoal:  weeklyGoal,
		MonthlyGoal: monthlyGoal,
	}
	t.habits = append(t.habits, h)
	t.afterMutation()
	return h, true
}

// IncrementToday records one more completion for today.
func (t *Tracker) IncrementToday(id string) (habit.Habit, bool) {
	return t.mutate(id, func(h *habit.Habit) {
		today := dateutil.Today(t.clock.Now())
		if h.Completions == nil {
			h.Completions = map[string]int{}
		}
		h.Completions[today]++
		recomputeStreaks(h, today)
	})
}

// DecrementToday takes one completion back. Already at zero is a no-op, and
// a count that reaches zero is removed from the map entirely.
func (t *Tracker) DecrementToday(id string) (habit.Habit, bool) {
	return t.mutate(id, func(h *habit.Habit) {
		today := dateutil.Today(t.clock.Now())
		if h.Completions[today] == 0 {
			return
		}
		h.Completions[today]--
		if h.Completions[today] == 0 {
			delete(h.Completions, today)
		}
		recomputeStreaks(h, today)
	})
}

// EditDate sets the completion count for an arbitrary date. Counts at or
// below zero remove the entry, keeping the key set equal to the set of dates
// with positive counts.
func (t *Tracker) EditDate(id, date string, count int) (habit.Habit, bool) {
	return t.mutate(id, func(h *habit.Habit) {
		if h.Completions == nil {
			h.Completions = map[string]int{}
		}
		if count > 0 {
			h.Completions[date] = count
		} else {
			delete(h.Completions, date)
		}
		recomputeStreaks(h, dateutil.Today(t.clock.Now()))
	})
}

// Delete removes a habit. Unknown ids report false with no state change.
func (t *Tracker) Delete(id string) bool {
	for i, h := range t.habits {
		if h.ID == id {
			t.habits = append(t.habits[:i], t.habits[i+1:]...)
			t.afterMutation()
			return true
		}
	}
	return false
}

// Import replaces the whole collection, recomputing streaks for every habit
// so imported derived fields can never disagree with their completions.
func (t *Tracker) Import(habits []habit.Habit) {
	today := dateutil.Today(t.clock.Now())
	for i := range habits {
		if habits[i].Completions == nil {
			habits[i].Completions = map[string]int{}
		}
		recomputeStreaks(&habits[i], today)
	}
	t.habits = habits
	t.afterMutation()
}

// ClearAll wipes habits and the achievement record.
func (t *Tracker) ClearAll() error {
	t.habits = nil
	t.achievements = achievement.Evaluate(nil, nil, t.clock.Now())
	return t.store.Clear()
}

// CompletionsToday sums today's counts across all habits.
func (t *Tracker) CompletionsToday() int {
	today := dateutil.Today(t.clock.Now())
	total := 0
	for _, h := range t.habits {
		total += h.Completions[today]
	}
	return total
}

// ActiveStreaks counts habits with a live streak.
func (t *Tracker) ActiveStreaks() int {
	n := 0
	for _, h := range t.habits {
		if h.CurrentStreak > 0 {
			n++
		}
	}
	return n
}

func (t *Tracker) mutate(id string, fn func(*habit.Habit)) (habit.Habit, bool) {
	for i := range t.habits {
		if t.habits[i].ID == id {
			fn(&t.habits[i])
			t.afterMutation()
			return t.habits[i], true
		}
	}
	return habit.Habit{}, false
}

// afterMutation is the effect chain run on every state change: persist the
// collection, re-evaluate achievements against it, persist those too.
// Persistence failures are logged and dropped; the session keeps operating
// on in-memory state.
func (t *Tracker) afterMutation() {
	if err := t.store.SaveHabits(t.habits); err != nil {
		logger.Error("Failed to save habits", "error", err)
	}
	t.achievements = achievement.Evaluate(t.habits, t.achievements, t.clock.Now())
	t.saveAchievements()
}

func (t *Tracker) saveAchievements() {
	if err := t.store.SaveAchievements(t.achievements); err != nil {
		logger.Error("Failed to save achievements", "error", err)
	}
}
