// Package analytics derives aggregate statistics from the habit collection.
// Everything here is a pure function of (habits, now); nothing is cached or
// persisted.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/brk3/streaks/internal/dateutil"
	"github.com/brk3/streaks/pkg/habit"
)

const windowDays = 30

// Snapshot is the aggregate view over the trailing 30-day window.
type Snapshot struct {
	TotalCompletions  int            `json:"totalCompletions"`
	AverageDaily      float64        `json:"averageDaily"`
	ConsistencyScore  int            `json:"consistencyScore"`
	BestDay           string         `json:"bestDay"`
	WorstDay          string         `json:"worstDay"`
	WeeklyTrend       []WeekPoint    `json:"weeklyTrend"`
	CategoryBreakdown []CategoryStat `json:"categoryBreakdown"`
}

type WeekPoint struct {
	Week        string `json:"week"`
	Completions int    `json:"completions"`
}

type CategoryStat struct {
	Category    habit.Category `json:"category"`
	Completions int            `json:"completions"`
	Percentage  float64        `json:"percentage"`
}

// Progress is the per-habit goal view over trailing 7/30-day windows.
// Percentages are clamped to 100; a missing goal reads as zero progress.
type Progress struct {
	WeeklyCompletions  int     `json:"weeklyCompletions"`
	MonthlyCompletions int     `json:"monthlyCompletions"`
	WeeklyProgress     float64 `json:"weeklyProgress"`
	MonthlyProgress    float64 `json:"monthlyProgress"`
}

// HeatmapDay is one cell of a habit's trailing activity strip.
type HeatmapDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Calculate builds the aggregate snapshot.
func Calculate(habits []habit.Habit, now time.Time) Snapshot {
	window := dateutil.Range(now, windowDays)

	total := 0
	for _, h := range habits {
		total += h.TotalCompletions()
	}

	windowTotal := 0
	daysActive := 0
	for _, day := range window {
		dayTotal := 0
		for _, h := range habits {
			dayTotal += h.Completions[day]
		}
		windowTotal += dayTotal
		if dayTotal > 0 {
			daysActive++
		}
	}

	return Snapshot{
		TotalCompletions:  total,
		AverageDaily:      round1(float64(windowTotal) / windowDays),
		ConsistencyScore:  int(math.Round(float64(daysActive) / windowDays * 100)),
		BestDay:           bestWorstDay(habits, window, true),
		WorstDay:          bestWorstDay(habits, window, false),
		WeeklyTrend:       weeklyTrend(habits, now),
		CategoryBreakdown: categoryBreakdown(habits, total),
	}
}

// bestWorstDay buckets the window by weekday and picks the extreme bucket.
// Ties resolve to the earliest weekday in Sunday..Saturday order, keeping
// the result deterministic.
func bestWorstDay(habits []habit.Habit, window []string, best bool) string {
	var sums [7]int
	for _, day := range window {
		wd := dateutil.Weekday(day)
		for _, h := range habits {
			sums[wd] += h.Completions[day]
		}
	}

	pick := 0
	for wd := 1; wd < 7; wd++ {
		if best && sums[wd] > sums[pick] {
			pick = wd
		}
		if !best && sums[wd] < sums[pick] {
			pick = wd
		}
	}
	return time.Weekday(pick).String()
}

// weeklyTrend is four disjoint trailing 7-day windows, oldest first; the
// last point covers the 7 days ending today.
func weeklyTrend(habits []habit.Habit, now time.Time) []WeekPoint {
	trend := make([]WeekPoint, 0, 4)
	for i := 3; i >= 0; i-- {
		sum := 0
		for d := 0; d < 7; d++ {
			day := dateutil.DaysAgo(now, i*7+d)
			for _, h := range habits {
				sum += h.Completions[day]
			}
		}
		trend = append(trend, WeekPoint{
			Week:        weekLabel(4 - i),
			Completions: sum,
		})
	}
	return trend
}

func weekLabel(n int) string {
	return fmt.Sprintf("Week %d", n)
}

// categoryBreakdown has one entry per category present in the habit set, in
// the fixed category display order. Percentages are of all-time completions
// and sum to 100 when the total is positive.
func categoryBreakdown(habits []habit.Habit, total int) []CategoryStat {
	sums := map[habit.Category]int{}
	for _, h := range habits {
		sums[h.Category] += h.TotalCompletions()
	}

	out := []CategoryStat{}
	for _, c := range habit.Categories {
		n, ok := sums[c]
		if !ok {
			continue
		}
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		out = append(out, CategoryStat{Category: c, Completions: n, Percentage: pct})
	}
	return out
}

// HabitProgress computes the goal view for a single habit.
func HabitProgress(h habit.Habit, now time.Time) Progress {
	weekly := 0
	for _, day := range dateutil.Range(now, 7) {
		weekly += h.Completions[day]
	}
	monthly := 0
	for _, day := range dateutil.Range(now, windowDays) {
		monthly += h.Completions[day]
	}

	p := Progress{WeeklyCompletions: weekly, MonthlyCompletions: monthly}
	if h.WeeklyGoal > 0 {
		p.WeeklyProgress = math.Min(float64(weekly)/float64(h.WeeklyGoal)*100, 100)
	}
	if h.MonthlyGoal > 0 {
		p.MonthlyProgress = math.Min(float64(monthly)/float64(h.MonthlyGoal)*100, 100)
	}
	return p
}

// Heatmap returns the habit's day-by-day counts for the trailing n days,
// oldest first.
func Heatmap(h habit.Habit, now time.Time, n int) []HeatmapDay {
	out := make([]HeatmapDay, 0, n)
	for _, day := range dateutil.Range(now, n) {
		out = append(out, HeatmapDay{Date: day, Count: h.Completions[day]})
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
