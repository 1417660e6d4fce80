package schedule

import "context"

type Repository interface {
	// GetTemplate returns the stored intervals for a weekday in the order
	// of the most recent write. Empty slice when the doctor has no
	// template for that day.
	GetTemplate(
		ctx context.Context,
		doctorID uint,
		weekday string,
	) ([]Interval, error)

	// ReplaceTemplate swaps the full interval set for a weekday
	// atomically.
	ReplaceTemplate(
		ctx context.Context,
		doctorID uint,
		weekday string,
		intervals []Interval,
	) error

	// ClearTemplate removes every interval for a weekday.
	ClearTemplate(
		ctx context.Context,
		doctorID uint,
		weekday string,
	) error
}
