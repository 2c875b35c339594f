package habit

// Template is a starter habit offered by the CLI.
type Template struct {
	Name       string   `json:"name"`
	Emoji      string   `json:"emoji"`
	Category   Category `json:"category"`
	WeeklyGoal int      `json:"weeklyGoal"`
}

// Templates are the built-in starter habits.
var Templates = []Template{
	{Name: "Drink Water", Emoji: "💧", Category: CategoryHealth, WeeklyGoal: 56},
	{Name: "Exercise", Emoji: "🏃", Category: CategoryFitness, WeeklyGoal: 5},
	{Name: "Read Books", Emoji: "📚", Category: CategoryLearning, WeeklyGoal: 7},
	{Name: "Meditate", Emoji: "🧘", Category: CategoryMindfulness, WeeklyGoal: 7},
	{Name: "Write Journal", Emoji: "✍️", Category: CategoryCreative, WeeklyGoal: 7},
	{Name: "Learn Language", Emoji: "🗣️", Category: CategoryLearning, WeeklyGoal: 7},
	{Name: "Practice Instrument", Emoji: "🎵", Category: CategoryCreative, WeeklyGoal: 5},
	{Name: "Call Family", Emoji: "📞", Category: CategorySocial, WeeklyGoal: 3},
	{Name: "Take Vitamins", Emoji: "💊", Category: CategoryHealth, WeeklyGoal: 7},
	{Name: "Stretch", Emoji: "🤸", Category: CategoryFitness, WeeklyGoal: 7},
}

// FindTemplate looks a template up by name, case-sensitive.
func FindTemplate(name string) (Template, bool) {
	for _, t := range Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
