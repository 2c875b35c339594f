package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/brk3/streaks/internal/storage"
	"github.com/brk3/streaks/pkg/habit"
	"go.etcd.io/bbolt"
)

const (
	dataBucket      = "streaks"
	habitsKey       = "habits"
	achievementsKey = "achievements"
)

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(dataBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) LoadHabits() ([]habit.Habit, error) {
	var out []habit.Habit
	if err := s.load(habitsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) SaveHabits(habits []habit.Habit) error {
	return s.save(habitsKey, habits)
}

func (s *Store) LoadAchievements() ([]habit.Achievement, error) {
	var out []habit.Achievement
	if err := s.load(achievementsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) SaveAchievements(achievements []habit.Achievement) error {
	return s.save(achievementsKey, achievements)
}

// Clear drops both slots, leaving the store as if freshly created.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(dataBucket))
		if err := bucket.Delete([]byte(habitsKey)); err != nil {
			return err
		}
		return bucket.Delete([]byte(achievementsKey))
	})
}

func (s *Store) load(key string, v any) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(dataBucket)).Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("corrupt %s slot: %w", key, err)
		}
		return nil
	})
}

func (s *Store) save(key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(dataBucket)).Put([]byte(key), val)
	})
}

var _ storage.Store = (*Store)(nil)
