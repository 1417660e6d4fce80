package schedule

import (
	"time"

	"github.com/careslot/clinic-scheduler/internal/httperr"
)

// Interval is a contiguous time-of-day range in 24h "HH:mm" clinic-local
// time. Equality is structural: two intervals are the same slot iff both
// strings match exactly.
type Interval struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// DerivedSlot is a computed availability entry for one concrete date. Never
// persisted; Booked is true iff an active appointment holds the interval.
type DerivedSlot struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Booked bool   `json:"booked"`
}

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

func IsWeekday(name string) bool {
	_, ok := weekdays[name]
	return ok
}

// WeekdayOf maps a calendar date to its template key.
func WeekdayOf(date time.Time) string {
	return date.Weekday().String()
}

func parseClock(hm string) (time.Time, error) {
	return time.Parse("15:04", hm)
}

// Validate checks a single interval: both bounds parse as "HH:mm" and
// start < end.
func (iv Interval) Validate() error {
	start, err := parseClock(iv.Start)
	if err != nil {
		return httperr.ErrBusiness("invalid_interval")
	}
	end, err := parseClock(iv.End)
	if err != nil {
		return httperr.ErrBusiness("invalid_interval")
	}
	if !start.Before(end) {
		return httperr.ErrBusiness("invalid_interval")
	}
	return nil
}

// Overlaps reports whether two intervals share any time. Touching bounds
// (a.End == b.Start) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	aStart, _ := parseClock(iv.Start)
	aEnd, _ := parseClock(iv.End)
	bStart, _ := parseClock(other.Start)
	bEnd, _ := parseClock(other.End)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ValidateTemplate checks a full weekday template: every interval is valid
// and no two intervals overlap.
func ValidateTemplate(intervals []Interval) error {
	for i, iv := range intervals {
		if err := iv.Validate(); err != nil {
			return err
		}
		for j := 0; j < i; j++ {
			if iv.Overlaps(intervals[j]) {
				return httperr.ErrBusiness("slot_overlap")
			}
		}
	}
	return nil
}
