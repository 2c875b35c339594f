// Package apiclient is a thin client for the streaks HTTP API, used by CLI
// commands that talk to a running server instead of the local database.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brk3/streaks/internal/server"
	"github.com/brk3/streaks/pkg/habit"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/habits", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("list habits: %s", res.Status)
	}
	var response server.HabitListResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, err
	}
	return response.Habits, nil
}

func (c *Client) GetAchievements(ctx context.Context) ([]habit.Achievement, error) {
	req, _ := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/achievements", nil)
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("achievements: %s", res.Status)
	}
	var response server.AchievementListResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, err
	}
	return response.Achievements, nil
}
