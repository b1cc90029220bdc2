// Package schedule populates the panel's date and time pickers. The
// imagery service publishes one frame every half hour, at :15 and :45
// past the hour.
package schedule

import (
	"fmt"
	"time"
)

// Option is one picker entry: the wire value and the label shown.
type Option struct {
	Value string
	Label string
}

// DateOptions lists the selectable dates, newest first: now's date back
// through pastDays days. Values are YYYY-MM-DD, labels DD-MM-YYYY.
func DateOptions(now time.Time, pastDays int) []Option {
	opts := make([]Option, 0, pastDays+1)
	for i := 0; i <= pastDays; i++ {
		d := now.AddDate(0, 0, -i)
		opts = append(opts, Option{
			Value: d.Format("2006-01-02"),
			Label: d.Format("02-01-2006"),
		})
	}
	return opts
}

// TimeSlots lists the 48 acquisition slots of a day:
// 00:15, 00:45, ..., 23:15, 23:45.
func TimeSlots() []string {
	slots := make([]string, 0, 48)
	for h := 0; h < 24; h++ {
		slots = append(slots, fmt.Sprintf("%02d:15", h), fmt.Sprintf("%02d:45", h))
	}
	return slots
}

// DefaultSlot returns the first slot at or after now's minute within its
// hour; past :45 it rolls to the next hour's :15, wrapping midnight.
func DefaultSlot(now time.Time) string {
	h, m := now.Hour(), now.Minute()
	switch {
	case m <= 15:
		return fmt.Sprintf("%02d:15", h)
	case m <= 45:
		return fmt.Sprintf("%02d:45", h)
	default:
		return fmt.Sprintf("%02d:15", (h+1)%24)
	}
}
