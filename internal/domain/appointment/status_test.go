package appointment

import (
	"testing"

	"github.com/careslot/clinic-scheduler/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name     string
		from, to Status
		actor    Actor
		wantCode string
	}{
		{"doctor confirms booked", StatusBooked, StatusConfirmed, ActorDoctor, ""},
		{"patient cannot confirm", StatusBooked, StatusConfirmed, ActorPatient, "not_authorized"},
		{"doctor rejects booked", StatusBooked, StatusCancelled, ActorDoctor, ""},
		{"patient cancels booked", StatusBooked, StatusCancelled, ActorPatient, ""},
		{"doctor cancels confirmed", StatusConfirmed, StatusCancelled, ActorDoctor, ""},
		{"patient cancels confirmed", StatusConfirmed, StatusCancelled, ActorPatient, ""},
		{"system completes confirmed", StatusConfirmed, StatusCompleted, ActorSystem, ""},
		{"doctor cannot complete", StatusConfirmed, StatusCompleted, ActorDoctor, "not_authorized"},
		{"booked cannot complete", StatusBooked, StatusCompleted, ActorSystem, "invalid_transition"},
		{"cancelled is terminal (confirm)", StatusCancelled, StatusConfirmed, ActorDoctor, "invalid_transition"},
		{"cancelled is terminal (book)", StatusCancelled, StatusBooked, ActorPatient, "invalid_transition"},
		{"cancelled is terminal (complete)", StatusCancelled, StatusCompleted, ActorSystem, "invalid_transition"},
		{"completed is terminal", StatusCompleted, StatusCancelled, ActorDoctor, "invalid_transition"},
		{"no self transition", StatusBooked, StatusBooked, ActorDoctor, "invalid_transition"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to, tc.actor)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("CanTransition(%s→%s, %s) = %v, want nil",
						tc.from, tc.to, tc.actor, err)
				}
				return
			}
			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Fatalf("CanTransition(%s→%s, %s) = %v, want code %q",
					tc.from, tc.to, tc.actor, err, tc.wantCode)
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	if !IsActive(StatusBooked) || !IsActive(StatusConfirmed) {
		t.Fatal("booked and confirmed must hold the slot")
	}
	if IsActive(StatusCancelled) || IsActive(StatusCompleted) {
		t.Fatal("cancelled and completed must release the slot")
	}
}
