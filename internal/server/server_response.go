package server

import (
	"github.com/brk3/streaks/internal/analytics"
	"github.com/brk3/streaks/pkg/habit"
)

type HabitListResponse struct {
	Habits           []habit.Habit `json:"habits"`
	CompletionsToday int           `json:"completions_today"`
	ActiveStreaks    int           `json:"active_streaks"`
}

type AddHabitRequest struct {
	Name        string         `json:"name"`
	Emoji       string         `json:"emoji"`
	Category    habit.Category `json:"category"`
	WeeklyGoal  int            `json:"weeklyGoal"`
	MonthlyGoal int            `json:"monthlyGoal"`
}

type EditDateRequest struct {
	Count int `json:"count"`
}

type ProgressResponse struct {
	HabitID  string                 `json:"habit_id"`
	Progress analytics.Progress     `json:"progress"`
	Heatmap  []analytics.HeatmapDay `json:"heatmap"`
}

type AchievementListResponse struct {
	Achievements []habit.Achievement `json:"achievements"`
}
