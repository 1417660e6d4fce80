package schedule

import (
	"testing"

	"github.com/careslot/clinic-scheduler/internal/httperr"
)

func TestIntervalValidate(t *testing.T) {
	cases := []struct {
		name     string
		interval Interval
		wantCode string
	}{
		{"valid", Interval{Start: "09:00", End: "10:00"}, ""},
		{"inverted", Interval{Start: "09:00", End: "08:00"}, "invalid_interval"},
		{"zero length", Interval{Start: "09:00", End: "09:00"}, "invalid_interval"},
		{"bad start", Interval{Start: "9am", End: "10:00"}, "invalid_interval"},
		{"bad end", Interval{Start: "09:00", End: "25:00"}, "invalid_interval"},
		{"empty", Interval{}, "invalid_interval"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.interval.Validate()
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Fatalf("Validate() = %v, want code %q", err, tc.wantCode)
			}
		})
	}
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			"partial overlap",
			Interval{Start: "09:00", End: "10:00"},
			Interval{Start: "09:30", End: "10:30"},
			true,
		},
		{
			"containment",
			Interval{Start: "09:00", End: "12:00"},
			Interval{Start: "10:00", End: "11:00"},
			true,
		},
		{
			"touching bounds",
			Interval{Start: "09:00", End: "10:00"},
			Interval{Start: "10:00", End: "11:00"},
			false,
		},
		{
			"disjoint",
			Interval{Start: "09:00", End: "10:00"},
			Interval{Start: "14:00", End: "15:00"},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("Overlaps() = %v, want %v", got, tc.want)
			}
			// symmetric
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("Overlaps() reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidateTemplate(t *testing.T) {
	cases := []struct {
		name      string
		intervals []Interval
		wantCode  string
	}{
		{
			"overlapping pair rejected",
			[]Interval{
				{Start: "09:00", End: "10:00"},
				{Start: "09:30", End: "10:30"},
			},
			"slot_overlap",
		},
		{
			"inverted rejected",
			[]Interval{{Start: "09:00", End: "08:00"}},
			"invalid_interval",
		},
		{
			"touching accepted",
			[]Interval{
				{Start: "09:00", End: "10:00"},
				{Start: "10:00", End: "11:00"},
			},
			"",
		},
		{
			"empty accepted",
			nil,
			"",
		},
		{
			"out of order but disjoint accepted",
			[]Interval{
				{Start: "14:00", End: "15:00"},
				{Start: "09:00", End: "10:00"},
			},
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTemplate(tc.intervals)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateTemplate() = %v, want nil", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Fatalf("ValidateTemplate() = %v, want code %q", err, tc.wantCode)
			}
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	if !IsWeekday("Monday") || !IsWeekday("Sunday") {
		t.Fatal("weekday names not recognized")
	}
	if IsWeekday("monday") || IsWeekday("Funday") {
		t.Fatal("invalid weekday accepted")
	}
}
