package cmd

import (
	"fmt"
	"time"

	"github.com/brk3/streaks/internal/dateutil"
	"github.com/brk3/streaks/pkg/habit"
)

func todayCount(h habit.Habit) int {
	return h.Completions[dateutil.Today(time.Now())]
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
