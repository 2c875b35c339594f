package habit

// Category classifies a habit. The set is closed; anything unrecognised is
// coerced to CategoryOther at the input boundary.
type Category string

const (
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryLearning     Category = "learning"
	CategoryMindfulness  Category = "mindfulness"
	CategoryCreative     Category = "creative"
	CategorySocial       Category = "social"
	CategoryProductivity Category = "productivity"
	CategoryOther        Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryHealth,
	CategoryFitness,
	CategoryLearning,
	CategoryMindfulness,
	CategoryCreative,
	CategorySocial,
	CategoryProductivity,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Habit is a tracked activity. Completions maps date keys (YYYY-MM-DD, local
// time) to counts; a key is only present while its count is positive.
// CurrentStreak and BestStreak are derived from Completions and must be
// recomputed after every completion mutation, never set directly.
// BestStreak >= CurrentStreak holds after every mutation.
type Habit struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Emoji         string         `json:"emoji"`
	Category      Category       `json:"category"`
	CreatedAt     string         `json:"createdAt"`
	Completions   map[string]int `json:"completions"`
	CurrentStreak int            `json:"currentStreak"`
	BestStreak    int            `json:"bestStreak"`
	WeeklyGoal    int            `json:"weeklyGoal,omitempty"`
	MonthlyGoal   int            `json:"monthlyGoal,omitempty"`
}

// TotalCompletions sums every recorded count across all dates.
func (h Habit) TotalCompletions() int {
	total := 0
	for _, count := range h.Completions {
		total += count
	}
	return total
}

// AchievementID identifies one of the eight fixed achievements.
type AchievementID string

const (
	FirstHabit         AchievementID = "first-habit"
	WeekStreak         AchievementID = "week-streak"
	MonthStreak        AchievementID = "month-streak"
	HundredCompletions AchievementID = "hundred-completions"
	FiveHabits         AchievementID = "five-habits"
	PerfectWeek        AchievementID = "perfect-week"
	EarlyBird          AchievementID = "early-bird"
	ConsistencyKing    AchievementID = "consistency-king"
)

// Achievement is a monotonic milestone: Unlocked never transitions back to
// false, and UnlockedAt is stamped exactly once at first unlock.
type Achievement struct {
	ID          AchievementID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Unlocked    bool          `json:"unlocked"`
	UnlockedAt  string        `json:"unlockedAt,omitempty"`
}
