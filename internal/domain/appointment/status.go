package appointment

import "github.com/careslot/clinic-scheduler/internal/httperr"

type Status string

const (
	StatusBooked    Status = "booked"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Actor kinds for status transitions. Ownership (assigned doctor, owning
// patient) is checked separately before the transition table is consulted.
type Actor string

const (
	ActorDoctor  Actor = "doctor"
	ActorPatient Actor = "patient"
	ActorSystem  Actor = "system"
)

func InitialStatus() Status {
	return StatusBooked
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusBooked, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Active statuses hold their slot; cancelled and completed release it.
func IsActive(s Status) bool {
	return s == StatusBooked || s == StatusConfirmed
}

// transitions is the legality matrix: for each (from, to) edge, the actor
// kinds allowed to perform it. Cancelled and completed are terminal.
var transitions = map[Status]map[Status][]Actor{
	StatusBooked: {
		StatusConfirmed: {ActorDoctor},
		StatusCancelled: {ActorDoctor, ActorPatient},
	},
	StatusConfirmed: {
		StatusCancelled: {ActorDoctor, ActorPatient},
		StatusCompleted: {ActorSystem},
	},
}

// CanTransition validates one edge of the state machine. An illegal edge
// fails with invalid_transition; a legal edge attempted by the wrong actor
// kind fails with not_authorized.
func CanTransition(from, to Status, actor Actor) error {
	targets, ok := transitions[from]
	if !ok {
		return httperr.ErrBusiness("invalid_transition")
	}
	actors, ok := targets[to]
	if !ok {
		return httperr.ErrBusiness("invalid_transition")
	}
	for _, a := range actors {
		if a == actor {
			return nil
		}
	}
	return httperr.ErrBusiness("not_authorized")
}
