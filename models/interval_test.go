package models

import (
	"testing"
	"time"
)

func TestNewTimeOfDay(t *testing.T) {
	cases := []struct {
		hours, minutes int
		want           TimeOfDay
		wantErr        bool
	}{
		{0, 0, 0, false},
		{9, 0, 540, false},
		{12, 30, 750, false},
		{23, 59, 1439, false},
		{24, 0, 0, true},
		{-1, 0, 0, true},
		{10, 60, 0, true},
		{10, -5, 0, true},
	}
	for _, c := range cases {
		got, err := NewTimeOfDay(c.hours, c.minutes)
		if c.wantErr {
			if err == nil {
				t.Errorf("NewTimeOfDay(%d, %d): expected error", c.hours, c.minutes)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewTimeOfDay(%d, %d): unexpected error: %v", c.hours, c.minutes, err)
			continue
		}
		if got != c.want {
			t.Errorf("NewTimeOfDay(%d, %d) = %d, want %d", c.hours, c.minutes, got, c.want)
		}
	}
}

func TestMinutesOfDay(t *testing.T) {
	ts := time.Date(2026, 6, 8, 10, 30, 0, 0, time.Local)
	if got := MinutesOfDay(ts); got != 630 {
		t.Errorf("MinutesOfDay(10:30) = %d, want 630", got)
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := TimeOfDay(540).String(); got != "09:00" {
		t.Errorf("String() = %q, want 09:00", got)
	}
	if got := TimeOfDay(1025).String(); got != "17:05" {
		t.Errorf("String() = %q, want 17:05", got)
	}
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint before", Interval{540, 600}, Interval{600, 660}, false},
		{"disjoint after", Interval{660, 720}, Interval{540, 660}, false},
		{"a starts inside b", Interval{580, 700}, Interval{540, 600}, true},
		{"a ends inside b", Interval{500, 560}, Interval{540, 600}, true},
		{"a contains b", Interval{500, 700}, Interval{540, 600}, true},
		{"b contains a", Interval{550, 590}, Interval{540, 600}, true},
		{"identical", Interval{540, 600}, Interval{540, 600}, true},
		{"touching endpoints", Interval{540, 600}, Interval{600, 700}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(c.b); got != c.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
			// Overlap is symmetric.
			if got := c.b.Overlaps(c.a); got != c.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v (symmetry)", c.b, c.a, got, c.want)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	outer := Interval{540, 1080} // 09:00-18:00
	cases := []struct {
		inner Interval
		want  bool
	}{
		{Interval{540, 1080}, true},
		{Interval{600, 660}, true},
		{Interval{500, 600}, false},
		{Interval{1000, 1100}, false},
	}
	for _, c := range cases {
		if got := outer.Contains(c.inner); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.inner, got, c.want)
		}
	}
}

func TestIntervalValidate(t *testing.T) {
	if err := (Interval{540, 1080}).Validate(); err != nil {
		t.Errorf("valid interval rejected: %v", err)
	}
	if err := (Interval{600, 600}).Validate(); err == nil {
		t.Error("zero-length interval accepted")
	}
	if err := (Interval{700, 600}).Validate(); err == nil {
		t.Error("inverted interval accepted")
	}
	if err := (Interval{1400, 1500}).Validate(); err == nil {
		t.Error("interval past midnight accepted")
	}
}
