// Package server exposes the tracker over HTTP for dashboards and remote
// CLI use. Every route is a thin adapter over tracker/analytics calls.
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brk3/streaks/internal/analytics"
	"github.com/brk3/streaks/internal/backup"
	"github.com/brk3/streaks/internal/clock"
	"github.com/brk3/streaks/internal/dateutil"
	"github.com/brk3/streaks/internal/logger"
	"github.com/brk3/streaks/internal/tracker"
	"github.com/brk3/streaks/pkg/habit"
	"github.com/brk3/streaks/pkg/versioninfo"
)

type Server struct {
	Tracker *tracker.Tracker
	Clock   clock.Clock
}

func New(t *tracker.Tracker, clk clock.Clock) *Server {
	return &Server{Tracker: t, Clock: clk}
}

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Get("/stats", s.getStats)
	r.Get("/achievements", s.getAchievements)
	r.Get("/export", s.getExport)
	r.Post("/import", s.postImport)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/habits", func(r chi.Router) {
		r.Get("/", s.listHabits)
		r.Post("/", s.addHabit)
		r.Delete("/{habit_id}", s.deleteHabit)
		r.Post("/{habit_id}/done", s.incrementHabit)
		r.Post("/{habit_id}/undo", s.decrementHabit)
		r.Put("/{habit_id}/dates/{date}", s.editHabitDate)
		r.Get("/{habit_id}/progress", s.getHabitProgress)
	})
	return r
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	info := versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	}
	if err := writeJSON(w, http.StatusOK, info); err != nil {
		http.Error(w, `{"error":"failed to serialize version info"}`, http.StatusInternalServerError)
	}
}

func (s *Server) listHabits(w http.ResponseWriter, _ *http.Request) {
	resp := HabitListResponse{
		Habits:           s.Tracker.Habits(),
		CompletionsToday: s.Tracker.CompletionsToday(),
		ActiveStreaks:    s.Tracker.ActiveStreaks(),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) addHabit(w http.ResponseWriter, r *http.Request) {
	var req AddHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	h, ok := s.Tracker.Add(req.Name, req.Emoji, req.Category, req.WeeklyGoal, req.MonthlyGoal)
	if !ok {
		http.Error(w, `{"error":"habit name is required"}`, http.StatusBadRequest)
		return
	}
	s.recordMutation("add")
	if err := writeJSON(w, http.StatusCreated, h); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "habit_id")
	if !s.Tracker.Delete(id) {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	s.recordMutation("delete")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) incrementHabit(w http.ResponseWriter, r *http.Request) {
	s.mutateHabit(w, r, "done", s.Tracker.IncrementToday)
}

func (s *Server) decrementHabit(w http.ResponseWriter, r *http.Request) {
	s.mutateHabit(w, r, "undo", s.Tracker.DecrementToday)
}

func (s *Server) mutateHabit(w http.ResponseWriter, r *http.Request, op string, fn func(string) (habit.Habit, bool)) {
	id := chi.URLParam(r, "habit_id")
	h, ok := fn(id)
	if !ok {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	s.recordMutation(op)
	if err := writeJSON(w, http.StatusOK, h); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) editHabitDate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "habit_id")
	date := chi.URLParam(r, "date")
	if _, ok := dateutil.Parse(date); !ok {
		http.Error(w, `{"error":"date must be YYYY-MM-DD"}`, http.StatusBadRequest)
		return
	}

	var req EditDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	h, ok := s.Tracker.EditDate(id, date, req.Count)
	if !ok {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	s.recordMutation("edit")
	if err := writeJSON(w, http.StatusOK, h); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) getHabitProgress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "habit_id")
	h, ok := s.Tracker.Get(id)
	if !ok {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}

	now := s.Clock.Now()
	resp := ProgressResponse{
		HabitID:  h.ID,
		Progress: analytics.HabitProgress(h, now),
		Heatmap:  analytics.Heatmap(h, now, 30),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) getStats(w http.ResponseWriter, _ *http.Request) {
	snapshot := analytics.Calculate(s.Tracker.Habits(), s.Clock.Now())
	if err := writeJSON(w, http.StatusOK, snapshot); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) getAchievements(w http.ResponseWriter, _ *http.Request) {
	resp := AchievementListResponse{Achievements: s.Tracker.Achievements()}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
	}
}

func (s *Server) getExport(w http.ResponseWriter, _ *http.Request) {
	doc, err := backup.Export(s.Tracker.Habits(), s.Clock.Now())
	if err != nil {
		http.Error(w, `{"error":"failed to build export"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="streaks-export.json"`)
	_, _ = w.Write(doc)
}

func (s *Server) postImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, `{"error":"failed to read body"}`, http.StatusBadRequest)
		return
	}

	habits, err := backup.Import(data)
	if err != nil {
		logger.Warn("Rejected import payload", "error", err)
		http.Error(w, `{"error":"invalid backup document"}`, http.StatusBadRequest)
		return
	}

	s.Tracker.Import(habits)
	s.recordMutation("import")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) recordMutation(op string) {
	habitOpsTotal.WithLabelValues(op).Inc()
	activeHabits.Set(float64(len(s.Tracker.Habits())))
}
