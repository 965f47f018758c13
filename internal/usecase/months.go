package usecase

import (
	"log"
	"time"
)

const calendarMonthLayout = "2006-01"

// calendarMonth maps a 1-based contract month index onto an absolute
// "YYYY-MM" key. Month 1 is the calendar month of the baseline start date;
// time.Date normalizes month overflow, so year rollover is free.
//
// A zero start date means the baseline record had no usable date; alignment
// then anchors on "now", which is surfaced loudly because every derived
// calendar key is unreliable from that point on.
func calendarMonth(start time.Time, monthIndex int) string {
	if start.IsZero() {
		start = time.Now().UTC()
		log.Printf("[materializer][months] missing baseline start date, anchoring month alignment on now=%s (alignment unreliable)",
			start.Format(calendarMonthLayout))
	}
	if monthIndex < 1 {
		monthIndex = 1
	}
	t := time.Date(start.Year(), start.Month()+time.Month(monthIndex-1), 1, 0, 0, 0, 0, time.UTC)
	return t.Format(calendarMonthLayout)
}
