package server

import (
	"sync"

	"github.com/brk3/streaks/internal/storage"
	"github.com/brk3/streaks/pkg/habit"
)

type memStore struct {
	mu           sync.RWMutex
	habits       []habit.Habit
	achievements []habit.Achievement
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) LoadHabits() ([]habit.Habit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]habit.Habit(nil), m.habits...), nil
}

func (m *memStore) SaveHabits(habits []habit.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.habits = append([]habit.Habit(nil), habits...)
	return nil
}

func (m *memStore) LoadAchievements() ([]habit.Achievement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]habit.Achievement(nil), m.achievements...), nil
}

func (m *memStore) SaveAchievements(achievements []habit.Achievement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.achievements = append([]habit.Achievement(nil), achievements...)
	return nil
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.habits, m.achievements = nil, nil
	return nil
}

func (m *memStore) Close() error {
	return nil
}

var _ storage.Store = (*memStore)(nil)
