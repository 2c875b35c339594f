package tracker

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brk3/streaks/internal/clock"
	"github.com/brk3/streaks/internal/dateutil"
	"github.com/brk3/streaks/internal/storage"
	"github.com/brk3/streaks/pkg/habit"
)

type memStore struct {
	mu           sync.Mutex
	habits       []habit.Habit
	achievements []habit.Achievement
	loadErr      error
	saveErr      error
	saves        int
}

func (m *memStore) LoadHabits() ([]habit.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]habit.Habit(nil), m.habits...), nil
}

func (m *memStore) SaveHabits(habits []habit.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.habits = append([]habit.Habit(nil), habits...)
	m.saves++
	return nil
}

func (m *memStore) LoadAchievements() ([]habit.Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
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

func (m *memStore) Close() error { return nil }

var _ storage.Store = (*memStore)(nil)

func newTracker(t *testing.T) (*Tracker, *memStore, clock.Fixed) {
	t.Helper()
	st := &memStore{}
	clk := clock.FixedDate(2024, 3, 15)
	return Open(st, clk), st, clk
}

func TestAdd(t *testing.T) {
	tr, st, _ := newTracker(t)

	h, ok := tr.Add("Read Books", "📚", habit.CategoryLearning, 7, 30)
	require.True(t, ok)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "2024-03-15", h.CreatedAt)
	assert.Zero(t, h.CurrentStreak)
	assert.Zero(t, h.BestStreak)
	assert.Empty(t, h.Completions)
	assert.Len(t, tr.Habits(), 1)
	assert.Equal(t, 1, st.saves)
}

func TestAdd_BlankNameIsNoop(t *testing.T) {
	tr, st, _ := newTracker(t)

	_, ok := tr.Add("   ", "", habit.CategoryOther, 0, 0)
	assert.False(t, ok)
	assert.Empty(t, tr.Habits())
	assert.Zero(t, st.saves)
}

func TestAdd_UnknownCategoryCoerced(t *testing.T) {
	tr, _, _ := newTracker(t)

	h, ok := tr.Add("x", "", habit.Category("banana"), 0, 0)
	require.True(t, ok)
	assert.Equal(t, habit.CategoryOther, h.Category)
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	tr, _, _ := newTracker(t)
	h, _ := tr.Add("guitar", "🎸", habit.CategoryCreative, 0, 0)

	before, _ := tr.Get(h.ID)

	after, ok := tr.IncrementToday(h.ID)
	require.True(t, ok)
	assert.Equal(t, 1, after.Completions["2024-03-15"])
	assert.Equal(t, 1, after.CurrentStreak)

	after, ok = tr.DecrementToday(h.ID)
	require.True(t, ok)
	assert.Equal(t, before.Completions, after.Completions)
	assert.Equal(t, before.CurrentStreak, after.CurrentStreak)
	assert.Equal(t, before.BestStreak, after.BestStreak)
	assert.NotContains(t, after.Completions, "2024-03-15")
}

func TestDecrementAtZeroIsNoop(t *testing.T) {
	tr, _, _ := newTracker(t)
	h, _ := tr.Add("guitar", "", habit.CategoryOther, 0, 0)

	after, ok := tr.DecrementToday(h.ID)
	require.True(t, ok)
	assert.Empty(t, after.Completions)
}

func TestEditDate(t *testing.T) {
	tr, _, clk := newTracker(t)
	h, _ := tr.Add("run", "", habit.CategoryFitness, 0, 0)

	yesterday := dateutil.DaysAgo(clk.Now(), 1)
	after, ok := tr.EditDate(h.ID, yesterday, 3)
	require.True(t, ok)
	assert.Equal(t, 3, after.Completions[yesterday])
	// yesterday alone is not a current streak
	assert.Zero(t, after.CurrentStreak)
	assert.Equal(t, 1, after.BestStreak)

	after, _ = tr.EditDate(h.ID, yesterday, 0)
	assert.NotContains(t, after.Completions, yesterday)
	assert.Zero(t, after.BestStreak)
}

func TestEditDateZeroEqualsNeverRecorded(t *testing.T) {
	tr, _, clk := newTracker(t)
	h, _ := tr.Add("run", "", habit.CategoryFitness, 0, 0)

	day := dateutil.DaysAgo(clk.Now(), 2)
	tr.EditDate(h.ID, day, 5)
	edited, _ := tr.EditDate(h.ID, day, 0)

	fresh, _ := tr.Add("run2", "", habit.CategoryFitness, 0, 0)
	assert.Equal(t, fresh.Completions, edited.Completions)
	assert.Equal(t, fresh.CurrentStreak, edited.CurrentStreak)
	assert.Equal(t, fresh.BestStreak, edited.BestStreak)
}

func TestStreakScenario_FiveDayRunInThePast(t *testing.T) {
	// completions on 2024-01-01..05, evaluated on 2024-01-06
	st := &memStore{}
	clk := clock.FixedDate(2024, 1, 6)
	tr := Open(st, clk)

	h, _ := tr.Add("yoga", "", habit.CategoryFitness, 0, 0)
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"} {
		tr.EditDate(h.ID, d, 1)
	}

	got, _ := tr.Get(h.ID)
	assert.Zero(t, got.CurrentStreak)
	assert.Equal(t, 5, got.BestStreak)
}

func TestBestNeverBelowCurrent(t *testing.T) {
	tr, _, _ := newTracker(t)
	h, _ := tr.Add("x", "", habit.CategoryOther, 0, 0)

	ops := []func(){
		func() { tr.IncrementToday(h.ID) },
		func() { tr.IncrementToday(h.ID) },
		func() { tr.DecrementToday(h.ID) },
		func() { tr.EditDate(h.ID, "2024-03-14", 2) },
		func() { tr.EditDate(h.ID, "2024-03-14", 0) },
		func() { tr.DecrementToday(h.ID) },
	}
	for i, op := range ops {
		op()
		got, _ := tr.Get(h.ID)
		require.GreaterOrEqual(t, got.BestStreak, got.CurrentStreak, "op %d", i)
	}
}

func TestDelete(t *testing.T) {
	tr, _, _ := newTracker(t)
	h, _ := tr.Add("x", "", habit.CategoryOther, 0, 0)

	assert.True(t, tr.Delete(h.ID))
	assert.False(t, tr.Delete(h.ID))
	assert.Empty(t, tr.Habits())
}

func TestImport_RecomputesStreaks(t *testing.T) {
	tr, _, _ := newTracker(t)

	// stored derived fields lie; import must not trust them
	tr.Import([]habit.Habit{{
		ID:            "abc",
		Name:          "guitar",
		Category:      habit.CategoryCreative,
		Completions:   map[string]int{"2024-03-15": 1, "2024-03-14": 1},
		CurrentStreak: 99,
		BestStreak:    0,
	}})

	got, ok := tr.Get("abc")
	require.True(t, ok)
	assert.Equal(t, 2, got.CurrentStreak)
	assert.Equal(t, 2, got.BestStreak)
}

func TestClearAll(t *testing.T) {
	tr, st, _ := newTracker(t)
	tr.Add("x", "", habit.CategoryOther, 0, 0)
	tr.IncrementToday(tr.Habits()[0].ID)

	require.NoError(t, tr.ClearAll())
	assert.Empty(t, tr.Habits())
	assert.Empty(t, st.habits)
	for _, a := range tr.Achievements() {
		assert.False(t, a.Unlocked)
	}
}

func TestOpen_LoadErrorStartsEmpty(t *testing.T) {
	st := &memStore{loadErr: errors.New("corrupt")}
	tr := Open(st, clock.FixedDate(2024, 3, 15))
	assert.Empty(t, tr.Habits())
}

func TestSaveErrorKeepsSessionState(t *testing.T) {
	st := &memStore{saveErr: errors.New("disk full")}
	tr := Open(st, clock.FixedDate(2024, 3, 15))

	_, ok := tr.Add("x", "", habit.CategoryOther, 0, 0)
	require.True(t, ok)
	assert.Len(t, tr.Habits(), 1)
}

func TestCountersForListSummary(t *testing.T) {
	tr, _, _ := newTracker(t)
	a, _ := tr.Add("a", "", habit.CategoryOther, 0, 0)
	tr.Add("b", "", habit.CategoryOther, 0, 0)

	tr.IncrementToday(a.ID)
	tr.IncrementToday(a.ID)

	assert.Equal(t, 2, tr.CompletionsToday())
	assert.Equal(t, 1, tr.ActiveStreaks())
}
