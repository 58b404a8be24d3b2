package schedule

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00 AM", 540, false},
		{"09:30 AM", 570, false},
		{"12:00 AM", 0, false},
		{"12:00 PM", 720, false},
		{"12:30 AM", 30, false},
		{"11:59 PM", 1439, false},
		{"01:00 PM", 780, false},
		{"1:00 PM", 780, false},
		{"13:00 PM", 0, true},
		{"00:30 AM", 0, true},
		{"09:60 AM", 0, true},
		{"09:00", 0, true},
		{"nine AM", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	// Every well-formed zero-padded time must survive a full round trip,
	// including the 12 AM / 12 PM boundaries.
	for minutes := 0; minutes < 1440; minutes++ {
		s := FormatClock(minutes)
		back, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(FormatClock(%d)) = %q failed: %v", minutes, s, err)
		}
		if back != minutes {
			t.Fatalf("round trip %d -> %q -> %d", minutes, s, back)
		}
	}

	if got := FormatClock(0); got != "12:00 AM" {
		t.Errorf("FormatClock(0) = %q, want 12:00 AM", got)
	}
	if got := FormatClock(720); got != "12:00 PM" {
		t.Errorf("FormatClock(720) = %q, want 12:00 PM", got)
	}
}

func TestWeekdayIndex(t *testing.T) {
	// 2025-01-06 is a Monday.
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if got := WeekdayIndex(monday.AddDate(0, 0, i)); got != i {
			t.Errorf("WeekdayIndex(monday+%dd) = %d, want %d", i, got, i)
		}
	}
}

func TestDayName(t *testing.T) {
	if name, err := DayName(0); err != nil || name != "Monday" {
		t.Errorf("DayName(0) = %q, %v; want Monday", name, err)
	}
	if name, err := DayName(6); err != nil || name != "Sunday" {
		t.Errorf("DayName(6) = %q, %v; want Sunday", name, err)
	}
	if _, err := DayName(7); err == nil {
		t.Error("DayName(7): expected error")
	}
	if _, err := DayName(-1); err == nil {
		t.Error("DayName(-1): expected error")
	}
}

func TestGenerateSlots(t *testing.T) {
	slots, err := GenerateSlots("09:00 AM", "05:00 PM", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// floor((17:00-09:00)/30m) = 16 slots; the last one starts 04:30 PM.
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00 AM" {
		t.Errorf("first slot = %q, want 09:00 AM", slots[0])
	}
	if slots[len(slots)-1] != "04:30 PM" {
		t.Errorf("last slot = %q, want 04:30 PM", slots[len(slots)-1])
	}

	// Every slot must be reachable by repeated addition of the duration.
	start, _ := ParseClock("09:00 AM")
	for i, s := range slots {
		want := FormatClock(start + i*30)
		if s != want {
			t.Errorf("slot %d = %q, want %q", i, s, want)
		}
	}
}

func TestGenerateSlotsEdges(t *testing.T) {
	// Last slot must fully fit before the end of the window.
	slots, err := GenerateSlots("09:00 AM", "10:15 AM", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Errorf("expected 2 slots in a 75-minute window, got %d", len(slots))
	}

	// Inverted window: empty, not an error.
	slots, err = GenerateSlots("05:00 PM", "09:00 AM", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("inverted window should yield no slots, got %v", slots)
	}

	// Zero-length window.
	slots, err = GenerateSlots("09:00 AM", "09:00 AM", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("zero-length window should yield no slots, got %v", slots)
	}

	if _, err := GenerateSlots("09:00 AM", "05:00 PM", 0); err == nil {
		t.Error("zero duration: expected error")
	}
	if _, err := GenerateSlots("bad", "05:00 PM", 30); err == nil {
		t.Error("bad start time: expected error")
	}
}

func TestCapacity(t *testing.T) {
	cases := []struct {
		start, end string
		duration   int
		want       int
	}{
		{"09:00 AM", "05:00 PM", 30, 16},
		{"09:00 AM", "12:00 PM", 30, 6},
		{"09:00 AM", "10:15 AM", 30, 2},
		{"05:00 PM", "09:00 AM", 30, 0},
		{"09:00 AM", "09:00 AM", 30, 0},
	}

	for _, c := range cases {
		got, err := Capacity(c.start, c.end, c.duration)
		if err != nil {
			t.Errorf("Capacity(%q,%q,%d): unexpected error: %v", c.start, c.end, c.duration, err)
			continue
		}
		if got != c.want {
			t.Errorf("Capacity(%q,%q,%d) = %d, want %d", c.start, c.end, c.duration, got, c.want)
		}
	}
}
