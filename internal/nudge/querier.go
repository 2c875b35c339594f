package nudge

import (
	"context"

	"github.com/brk3/streaks/pkg/habit"
)

// Querier is how the nudge check reads the habit collection, local store or
// remote API alike.
type Querier interface {
	ListHabits(ctx context.Context) ([]habit.Habit, error)
}
