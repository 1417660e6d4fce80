package appointment

import (
	"context"

	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/dto"
)

type ListForDoctor struct {
	repo domain.Repository
}

func NewListForDoctor(repo domain.Repository) *ListForDoctor {
	return &ListForDoctor{repo: repo}
}

func (uc *ListForDoctor) Execute(
	ctx context.Context,
	doctorID uint,
) ([]dto.DoctorAppointmentDTO, error) {

	appointments, err := uc.repo.ListForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DoctorAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.DoctorAppointmentDTO{
			ID:            ap.ID,
			Date:          ap.Date,
			Start:         ap.StartTime,
			End:           ap.EndTime,
			Status:        ap.Status,
			Reason:        ap.Reason,
			Fee:           ap.Fee,
			CreatedAt:     ap.CreatedAt,
			PatientName:   ap.Patient.Name,
			PatientEmail:  ap.Patient.Email,
			PatientPhone:  ap.Patient.Phone,
			PatientGender: ap.Patient.Gender,
		})
	}

	return out, nil
}
