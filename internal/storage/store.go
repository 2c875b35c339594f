package storage

import "github.com/brk3/streaks/pkg/habit"

// Store is the persistence slot pair for the tracker: one slot holding the
// full habit collection, one holding the achievement record. Each Save
// replaces the slot wholesale; last write wins.
type Store interface {
	LoadHabits() ([]habit.Habit, error)
	SaveHabits(habits []habit.Habit) error
	LoadAchievements() ([]habit.Achievement, error)
	SaveAchievements(achievements []habit.Achievement) error
	Clear() error
	Close() error
}
