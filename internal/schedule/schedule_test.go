package schedule

import (
	"fmt"
	"testing"
	"time"
)

func TestDateOptions(t *testing.T) {
	now := time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC)
	opts := DateOptions(now, 3)
	if len(opts) != 4 {
		t.Fatalf("got %d options, want 4", len(opts))
	}
	want := []Option{
		{Value: "2025-08-31", Label: "31-08-2025"},
		{Value: "2025-08-30", Label: "30-08-2025"},
		{Value: "2025-08-29", Label: "29-08-2025"},
		{Value: "2025-08-28", Label: "28-08-2025"},
	}
	for i := range want {
		if opts[i] != want[i] {
			t.Errorf("opts[%d] = %+v, want %+v", i, opts[i], want[i])
		}
	}
}

func TestDateOptionsCrossesMonth(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	opts := DateOptions(now, 1)
	if opts[1].Value != "2025-02-28" {
		t.Errorf("day before 2025-03-01 = %q", opts[1].Value)
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	if len(slots) != 48 {
		t.Fatalf("got %d slots, want 48", len(slots))
	}
	if slots[0] != "00:15" || slots[1] != "00:45" || slots[47] != "23:45" {
		t.Errorf("slot boundaries wrong: %q %q %q", slots[0], slots[1], slots[47])
	}
	for i, s := range slots {
		min := ":15"
		if i%2 == 1 {
			min = ":45"
		}
		if want := fmt.Sprintf("%02d%s", i/2, min); s != want {
			t.Errorf("slots[%d] = %q, want %q", i, s, want)
		}
	}
}

func TestDefaultSlot(t *testing.T) {
	cases := []struct {
		h, m int
		want string
	}{
		{10, 0, "10:15"},
		{10, 15, "10:15"},
		{10, 16, "10:45"},
		{10, 45, "10:45"},
		{10, 46, "11:15"},
		{23, 50, "00:15"},
	}
	for _, c := range cases {
		now := time.Date(2025, 8, 31, c.h, c.m, 0, 0, time.UTC)
		if got := DefaultSlot(now); got != c.want {
			t.Errorf("DefaultSlot(%02d:%02d) = %q, want %q", c.h, c.m, got, c.want)
		}
	}
}
