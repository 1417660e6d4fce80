package timezone

import "time"

// All dates and clock strings in the system are clinic-local; no per-user
// timezone conversion is performed.
const ClinicTimezone = "Asia/Kolkata"

func Location() *time.Location {
	loc, err := time.LoadLocation(ClinicTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today returns the current clinic-local date as "2006-01-02".
func Today() string {
	return Now().Format("2006-01-02")
}

func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location())
}
