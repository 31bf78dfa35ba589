package main

import (
	"reflect"
	"testing"
)

// 2024-03-15T00:00:00Z
const march15th2024 = 1710460800

func TestYearSecs(t *testing.T) {
	if yearSecs != 31556952 {
		t.Errorf("yearSecs = %d, want 31556952", yearSecs)
	}
}

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year uint
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{2100, false},
		{2400, true},
		{1970, false},
		{1972, true},
	}
	for _, tt := range tests {
		if got := IsLeap(tt.year); got != tt.want {
			t.Errorf("IsLeap(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestMonthLength_SumsToYear(t *testing.T) {
	for _, year := range []uint{1900, 1970, 2000, 2023, 2024, 2100} {
		leap := IsLeap(year)
		sum := 0
		for m := 0; m < 12; m++ {
			sum += MonthLength(m, leap)
		}
		if sum != YearLength(year) {
			t.Errorf("year %d: months sum to %d, want %d", year, sum, YearLength(year))
		}
	}
}

func TestMonthLength(t *testing.T) {
	tests := []struct {
		month int
		leap  bool
		want  int
	}{
		{0, false, 31},
		{1, false, 28},
		{1, true, 29},
		{3, false, 30},
		{5, true, 30},
		{8, false, 30},
		{10, false, 30},
		{11, true, 31},
	}
	for _, tt := range tests {
		if got := MonthLength(tt.month, tt.leap); got != tt.want {
			t.Errorf("MonthLength(%d, %v) = %d, want %d", tt.month, tt.leap, got, tt.want)
		}
	}
}

func TestNewYear_March2024(t *testing.T) {
	y := NewYear(march15th2024, NoSign)

	if y.AD != 2024 {
		t.Errorf("AD = %d, want 2024", y.AD)
	}
	if len(y.Days) != 366 {
		t.Errorf("len(Days) = %d, want 366", len(y.Days))
	}
	// Mean-year arithmetic lands one day behind the calendar date (index 74).
	if y.Today != 73 {
		t.Errorf("Today = %d, want 73", y.Today)
	}
	// 2024-01-01 was a Monday.
	if y.Weekd != 1 {
		t.Errorf("Weekd = %d, want 1", y.Weekd)
	}
	if got := y.CurrentMonth(); got != 2 {
		t.Errorf("CurrentMonth() = %d, want 2", got)
	}
	if got := y.DayOffset(); got != 60 {
		t.Errorf("DayOffset() = %d, want 60", got)
	}
}

func TestNewYear_Epoch(t *testing.T) {
	y := NewYear(0, NoSign)
	if y.AD != 1970 || y.Today != 0 {
		t.Errorf("NewYear(0) = AD %d day %d, want 1970 day 0", y.AD, y.Today)
	}
	if len(y.Days) != 365 {
		t.Errorf("len(Days) = %d, want 365", len(y.Days))
	}
	if y.CurrentMonth() != 0 || y.DayOffset() != 0 {
		t.Errorf("CurrentMonth()=%d DayOffset()=%d, want 0 0", y.CurrentMonth(), y.DayOffset())
	}
}

func TestNewYear_TodayClampedToYear(t *testing.T) {
	// The last mean-year day of 2025 falls on index 365, past a 365-day year.
	ts := uint64(55*yearSecs + 365*daySecs)
	y := NewYear(ts, NoSign)
	if y.AD != 2025 {
		t.Fatalf("AD = %d, want 2025", y.AD)
	}
	if y.Today != 364 {
		t.Errorf("Today = %d, want 364", y.Today)
	}
	if got := y.CurrentMonth(); got != 11 {
		t.Errorf("CurrentMonth() = %d, want 11", got)
	}
	if got := y.DayOffset(); got != 334 {
		t.Errorf("DayOffset() = %d, want 334", got)
	}
}

func TestYear_CurrentMonthAndDayOffsetAgree(t *testing.T) {
	for _, ad := range []uint{2023, 2024} {
		leap := IsLeap(ad)
		for today := 0; today < YearLength(ad); today++ {
			y := &Year{AD: ad, Today: today}
			month := y.CurrentMonth()
			offset := y.DayOffset()
			dayInMonth := today - offset
			if dayInMonth < 0 || dayInMonth >= MonthLength(month, leap) {
				t.Fatalf("year %d day %d: month %d offset %d gives day-in-month %d",
					ad, today, month, offset, dayInMonth)
			}
		}
	}
}

func TestNewYear_Deterministic(t *testing.T) {
	a := NewYear(march15th2024, Leo)
	b := NewYear(march15th2024, Leo)
	if !reflect.DeepEqual(a, b) {
		t.Error("same timestamp and sign produced different years")
	}
}

func TestNewYear_SignChangesMoods(t *testing.T) {
	plain := NewYear(march15th2024, NoSign)
	leo := NewYear(march15th2024, Leo)
	virgo := NewYear(march15th2024, Virgo)

	if reflect.DeepEqual(plain.Days, leo.Days) {
		t.Error("leo moods equal unsigned moods")
	}
	if reflect.DeepEqual(leo.Days, virgo.Days) {
		t.Error("leo moods equal virgo moods")
	}

	// Aries has offset zero and shares the unsigned sequence.
	aries := NewYear(march15th2024, Aries)
	if !reflect.DeepEqual(plain.Days, aries.Days) {
		t.Error("aries moods should equal unsigned moods")
	}
}

func TestNewYear_SeedsWithYear(t *testing.T) {
	y := NewYear(march15th2024, Leo)
	want := TakeMoods(NewHoro(2024+4), 366)
	if !reflect.DeepEqual(y.Days, want) {
		t.Error("days are not drawn from a generator seeded with year + sign")
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(2); got != "March" {
		t.Errorf("MonthName(2) = %q", got)
	}
	if got := MonthName(12); got != "" {
		t.Errorf("MonthName(12) = %q, want empty", got)
	}
}
