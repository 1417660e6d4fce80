package appointment

import (
	"context"
	"testing"

	"github.com/careslot/clinic-scheduler/internal/auth"
	domain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
)

type fakeRepo struct {
	records map[uint]*models.Appointment
}

func newFakeRepo(seed ...models.Appointment) *fakeRepo {
	f := &fakeRepo{records: map[uint]*models.Appointment{}}
	for i := range seed {
		ap := seed[i]
		f.records[ap.ID] = &ap
	}
	return f
}

func (f *fakeRepo) CreateBooked(_ context.Context, ap *models.Appointment) error {
	ap.Status = string(domain.StatusBooked)
	f.records[ap.ID] = ap
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.records[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	copied := *ap
	return &copied, nil
}

func (f *fakeRepo) Update(_ context.Context, ap *models.Appointment) error {
	f.records[ap.ID] = ap
	return nil
}

func (f *fakeRepo) ListActiveForDay(_ context.Context, _ uint, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) ListForDoctor(_ context.Context, _ uint) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) ListForPatient(_ context.Context, _ uint) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) ListElapsedConfirmed(_ context.Context, _, _ string) ([]models.Appointment, error) {
	return nil, nil
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateAvailability(_ context.Context, _ uint, _ string) {}

func seedAppointment(id uint, status string) models.Appointment {
	return models.Appointment{
		ID:        id,
		DoctorID:  7,
		PatientID: 3,
		Date:      "2099-06-01",
		StartTime: "09:00",
		EndTime:   "09:30",
		Status:    status,
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name     string
		seed     models.Appointment
		sess     auth.Session
		to       domain.Status
		wantCode string
	}{
		{
			name: "assigned doctor confirms",
			seed: seedAppointment(1, "booked"),
			sess: auth.Session{UserID: 7, Role: auth.RoleDoctor},
			to:   domain.StatusConfirmed,
		},
		{
			name: "patient cancels own booked appointment",
			seed: seedAppointment(1, "booked"),
			sess: auth.Session{UserID: 3, Role: auth.RolePatient},
			to:   domain.StatusCancelled,
		},
		{
			name: "doctor cancels confirmed appointment",
			seed: seedAppointment(1, "confirmed"),
			sess: auth.Session{UserID: 7, Role: auth.RoleDoctor},
			to:   domain.StatusCancelled,
		},
		{
			name:     "patient cannot confirm",
			seed:     seedAppointment(1, "booked"),
			sess:     auth.Session{UserID: 3, Role: auth.RolePatient},
			to:       domain.StatusConfirmed,
			wantCode: "not_authorized",
		},
		{
			name:     "doctor not assigned to the appointment",
			seed:     seedAppointment(1, "booked"),
			sess:     auth.Session{UserID: 8, Role: auth.RoleDoctor},
			to:       domain.StatusConfirmed,
			wantCode: "not_authorized",
		},
		{
			name:     "patient does not own the appointment",
			seed:     seedAppointment(1, "booked"),
			sess:     auth.Session{UserID: 4, Role: auth.RolePatient},
			to:       domain.StatusCancelled,
			wantCode: "not_authorized",
		},
		{
			name:     "cancelled is terminal",
			seed:     seedAppointment(1, "cancelled"),
			sess:     auth.Session{UserID: 7, Role: auth.RoleDoctor},
			to:       domain.StatusConfirmed,
			wantCode: "invalid_transition",
		},
		{
			name:     "completed is terminal",
			seed:     seedAppointment(1, "completed"),
			sess:     auth.Session{UserID: 3, Role: auth.RolePatient},
			to:       domain.StatusCancelled,
			wantCode: "invalid_transition",
		},
		{
			name:     "completion is not manual",
			seed:     seedAppointment(1, "confirmed"),
			sess:     auth.Session{UserID: 7, Role: auth.RoleDoctor},
			to:       domain.StatusCompleted,
			wantCode: "not_authorized",
		},
		{
			name:     "unknown status rejected",
			seed:     seedAppointment(1, "booked"),
			sess:     auth.Session{UserID: 7, Role: auth.RoleDoctor},
			to:       domain.Status("rescheduled"),
			wantCode: "invalid_status",
		},
		{
			name:     "admin sessions have no transition rights",
			seed:     seedAppointment(1, "booked"),
			sess:     auth.Session{UserID: 1, Role: auth.RoleAdmin},
			to:       domain.StatusCancelled,
			wantCode: "not_authorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(tt.seed)
			uc := NewUpdateStatus(repo, noopInvalidator{}, nil)

			ap, err := uc.Execute(context.Background(), tt.sess, tt.seed.ID, tt.to)

			if tt.wantCode != "" {
				if !httperr.IsBusiness(err, tt.wantCode) {
					t.Fatalf("Execute() = %v, want %s", err, tt.wantCode)
				}
				stored, _ := repo.GetByID(context.Background(), tt.seed.ID)
				if stored.Status != tt.seed.Status {
					t.Fatalf("rejected transition persisted: %q -> %q", tt.seed.Status, stored.Status)
				}
				return
			}

			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if ap.Status != string(tt.to) {
				t.Errorf("status = %q, want %q", ap.Status, tt.to)
			}
			if tt.to == domain.StatusCancelled && ap.CancelledAt == nil {
				t.Error("cancellation not timestamped")
			}
		})
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	uc := NewUpdateStatus(newFakeRepo(), noopInvalidator{}, nil)

	_, err := uc.Execute(context.Background(),
		auth.Session{UserID: 7, Role: auth.RoleDoctor}, 404, domain.StatusConfirmed)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("Execute() = %v, want appointment_not_found", err)
	}
}
