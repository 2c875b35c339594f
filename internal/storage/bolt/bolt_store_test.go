package bolt

import (
	"path/filepath"
	"testing"

	bbolt "go.etcd.io/bbolt"

	"github.com/brk3/streaks/pkg/habit"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "streaks.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestLoadHabits_EmptyStore(t *testing.T) {
	s, _ := openTestStore(t)

	habits, err := s.LoadHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(habits) != 0 {
		t.Fatalf("got %d habits from empty store, want 0", len(habits))
	}
}

func TestSaveLoadHabits_RoundTrip(t *testing.T) {
	s, _ := openTestStore(t)

	want := []habit.Habit{{
		ID:          "a1",
		Name:        "guitar",
		Category:    habit.CategoryCreative,
		CreatedAt:   "2024-03-01",
		Completions: map[string]int{"2024-03-15": 2},
	}}
	if err := s.SaveHabits(want); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "a1" || got[0].Completions["2024-03-15"] != 2 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSaveLoadAchievements_RoundTrip(t *testing.T) {
	s, _ := openTestStore(t)

	want := []habit.Achievement{{ID: habit.FirstHabit, Unlocked: true, UnlockedAt: "2024-03-15"}}
	if err := s.SaveAchievements(want); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadAchievements()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != habit.FirstHabit || !got[0].Unlocked {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestClear(t *testing.T) {
	s, _ := openTestStore(t)

	_ = s.SaveHabits([]habit.Habit{{ID: "a1", Name: "x"}})
	_ = s.SaveAchievements([]habit.Achievement{{ID: habit.FirstHabit, Unlocked: true}})

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}

	habits, _ := s.LoadHabits()
	achievements, _ := s.LoadAchievements()
	if len(habits) != 0 || len(achievements) != 0 {
		t.Fatal("expected both slots empty after clear")
	}
}

func TestLoadHabits_CorruptSlot(t *testing.T) {
	s, path := openTestStore(t)

	if err := s.SaveHabits([]habit.Habit{{ID: "a1"}}); err != nil {
		t.Fatal(err)
	}
	_ = s.Close()

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(dataBucket)).Put([]byte(habitsKey), []byte("{garbage"))
	})
	if err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	if _, err := s2.LoadHabits(); err == nil {
		t.Fatal("expected error for corrupt habits slot")
	}
}
