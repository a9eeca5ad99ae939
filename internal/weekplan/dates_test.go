package weekplan

import (
	"testing"
	"time"
)

func TestNextPracticeDay_SkipsWeekend(t *testing.T) {
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	got := NextPracticeDay(saturday)
	if got.Weekday() != time.Monday {
		t.Errorf("NextPracticeDay(Saturday) = %s, want Monday", got.Weekday())
	}

	tuesday := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	if !NextPracticeDay(tuesday).Equal(tuesday) {
		t.Error("NextPracticeDay(weekday) changed the date")
	}
}

func TestAddPracticeDays(t *testing.T) {
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	got := AddPracticeDays(friday, 1)
	want := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC) // Monday
	if !got.Equal(want) {
		t.Errorf("AddPracticeDays(Friday, 1) = %v, want %v", got, want)
	}

	got = AddPracticeDays(friday, 5)
	want = time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC) // next Friday
	if !got.Equal(want) {
		t.Errorf("AddPracticeDays(Friday, 5) = %v, want %v", got, want)
	}
}

func TestNextMonday(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{"from Wednesday", time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{"from Monday", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{"from Sunday", time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := NextMonday(tt.from); !got.Equal(tt.want) {
			t.Errorf("%s: NextMonday = %v, want %v", tt.name, got, tt.want)
		}
	}
}
