package appointment

import (
	"context"

	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/dto"
)

type ListForPatient struct {
	repo domain.Repository
}

func NewListForPatient(repo domain.Repository) *ListForPatient {
	return &ListForPatient{repo: repo}
}

func (uc *ListForPatient) Execute(
	ctx context.Context,
	patientID uint,
) ([]dto.PatientAppointmentDTO, error) {

	appointments, err := uc.repo.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PatientAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.PatientAppointmentDTO{
			ID:         ap.ID,
			Date:       ap.Date,
			Start:      ap.StartTime,
			End:        ap.EndTime,
			Status:     ap.Status,
			Reason:     ap.Reason,
			Fee:        ap.Fee,
			CreatedAt:  ap.CreatedAt,
			DoctorName: ap.Doctor.Name,
			Department: ap.Doctor.Department.Name,
		})
	}

	return out, nil
}
