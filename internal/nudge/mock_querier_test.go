package nudge

import (
	"context"

	"github.com/brk3/streaks/pkg/habit"
)

type mockQuerier struct {
	habits []habit.Habit
	err    error
}

func (m *mockQuerier) ListHabits(_ context.Context) ([]habit.Habit, error) {
	return m.habits, m.err
}
