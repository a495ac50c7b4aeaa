package tearsheet

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2025/01/15", Date{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDate(%q) expected an error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.February, 28)

	if got := d.Add(1); got != NewDate(2024, time.February, 29) {
		t.Errorf("Add(1) = %v, want 2024-02-29 (leap year)", got)
	}
	if got := d.Add(2); got != NewDate(2024, time.March, 1) {
		t.Errorf("Add(2) = %v, want 2024-03-01", got)
	}
	if got := NewDate(2024, time.March, 1).Sub(d); got != 2 {
		t.Errorf("Sub = %d, want 2", got)
	}
	if got := d.AddMonth(1); got != NewDate(2024, time.March, 28) {
		t.Errorf("AddMonth(1) = %v, want 2024-03-28", got)
	}
}

func TestStartEndOf(t *testing.T) {
	d := NewDate(2025, time.May, 14) // a Wednesday

	tests := []struct {
		period     Period
		start, end Date
	}{
		{Daily, d, d},
		{Weekly, NewDate(2025, time.May, 12), NewDate(2025, time.May, 18)},
		{Monthly, NewDate(2025, time.May, 1), NewDate(2025, time.May, 31)},
		{Quarterly, NewDate(2025, time.April, 1), NewDate(2025, time.June, 30)},
		{Yearly, NewDate(2025, time.January, 1), NewDate(2025, time.December, 31)},
	}
	for _, tt := range tests {
		if got := d.StartOf(tt.period); got != tt.start {
			t.Errorf("StartOf(%s) = %v, want %v", tt.period, got, tt.start)
		}
		if got := d.EndOf(tt.period); got != tt.end {
			t.Errorf("EndOf(%s) = %v, want %v", tt.period, got, tt.end)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.March, 9)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2025-03-09"` {
		t.Errorf("Marshal = %s, want \"2025-03-09\"", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestRangeIdentifier(t *testing.T) {
	tests := []struct {
		period Period
		on     Date
		want   string
	}{
		{Yearly, NewDate(2025, time.June, 15), "2025"},
		{Quarterly, NewDate(2025, time.May, 2), "2025-Q2"},
		{Monthly, NewDate(2025, time.January, 31), "2025-01"},
		{Daily, NewDate(2025, time.April, 1), "2025-04-01"},
	}
	for _, tt := range tests {
		got := tt.period.Range(tt.on).Identifier()
		if got != tt.want {
			t.Errorf("Identifier(%s at %s) = %q, want %q", tt.period, tt.on, got, tt.want)
		}
	}
}

func TestRangeDays(t *testing.T) {
	r := NewRange(NewDate(2025, time.January, 30), NewDate(2025, time.February, 2))
	var days []Date
	for d := range r.Days() {
		days = append(days, d)
	}
	want := []Date{
		NewDate(2025, time.January, 30),
		NewDate(2025, time.January, 31),
		NewDate(2025, time.February, 1),
		NewDate(2025, time.February, 2),
	}
	if len(days) != len(want) {
		t.Fatalf("Days yielded %d dates, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("Days[%d] = %v, want %v", i, days[i], want[i])
		}
	}
}
