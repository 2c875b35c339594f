package dateutil

import (
	"testing"
	"time"
)

var noon = time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)

func TestToday(t *testing.T) {
	if got := Today(noon); got != "2024-03-15" {
		t.Fatalf("got %q want 2024-03-15", got)
	}
}

func TestDaysAgo(t *testing.T) {
	cases := []struct {
		k    int
		want string
	}{
		{0, "2024-03-15"},
		{1, "2024-03-14"},
		{14, "2024-03-01"},
		{15, "2024-02-29"}, // leap year
	}
	for _, c := range cases {
		if got := DaysAgo(noon, c.k); got != c.want {
			t.Errorf("DaysAgo(%d) = %q, want %q", c.k, got, c.want)
		}
	}
}

func TestRange(t *testing.T) {
	got := Range(noon, 3)
	want := []string{"2024-03-13", "2024-03-14", "2024-03-15"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestPrevKey(t *testing.T) {
	if got := PrevKey("2024-03-01"); got != "2024-02-29" {
		t.Fatalf("got %q want 2024-02-29", got)
	}
	if got := PrevKey("garbage"); got != "" {
		t.Fatalf("got %q want empty for malformed key", got)
	}
}

func TestDiff(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2024-03-15", "2024-03-15", 0},
		{"2024-03-10", "2024-03-15", 5},
		{"2024-03-15", "2024-03-10", 5},
		{"2023-12-31", "2024-01-01", 1},
	}
	for _, c := range cases {
		if got := Diff(c.a, c.b); got != c.want {
			t.Errorf("Diff(%s, %s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestIsPreviousDay(t *testing.T) {
	if !IsPreviousDay("2024-03-14", "2024-03-15") {
		t.Fatal("14th is the previous day of the 15th")
	}
	if IsPreviousDay("2024-03-15", "2024-03-14") {
		t.Fatal("order matters")
	}
	if IsPreviousDay("2024-03-13", "2024-03-15") {
		t.Fatal("two days apart is not previous")
	}
	if !IsPreviousDay("2024-02-29", "2024-03-01") {
		t.Fatal("leap-day boundary")
	}
}

func TestWeekday(t *testing.T) {
	// 2024-03-15 is a Friday
	if got := Weekday("2024-03-15"); got != time.Friday {
		t.Fatalf("got %v want Friday", got)
	}
}

func TestKeysSortChronologically(t *testing.T) {
	if !("2024-03-09" < "2024-03-10" && "2024-03-31" < "2024-04-01") {
		t.Fatal("date keys must sort as strings")
	}
}
