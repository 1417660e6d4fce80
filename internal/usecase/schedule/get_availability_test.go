package schedule

import (
	"context"
	"testing"
	"time"

	apdomain "github.com/careslot/clinic-scheduler/internal/domain/appointment"
	domain "github.com/careslot/clinic-scheduler/internal/domain/schedule"
	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/models"
	"github.com/careslot/clinic-scheduler/internal/timezone"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeTemplates struct {
	templates map[string][]domain.Interval
}

func (f *fakeTemplates) GetTemplate(_ context.Context, _ uint, weekday string) ([]domain.Interval, error) {
	return f.templates[weekday], nil
}

func (f *fakeTemplates) ReplaceTemplate(_ context.Context, _ uint, weekday string, intervals []domain.Interval) error {
	f.templates[weekday] = intervals
	return nil
}

func (f *fakeTemplates) ClearTemplate(_ context.Context, _ uint, weekday string) error {
	delete(f.templates, weekday)
	return nil
}

type fakeLedger struct {
	appointments []models.Appointment
}

func (f *fakeLedger) CreateBooked(_ context.Context, ap *models.Appointment) error {
	ap.Status = string(apdomain.StatusBooked)
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeLedger) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			return &f.appointments[i], nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeLedger) Update(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeLedger) ListActiveForDay(_ context.Context, doctorID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.DoctorID == doctorID && ap.Date == date && apdomain.IsActive(apdomain.Status(ap.Status)) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListForDoctor(_ context.Context, doctorID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.DoctorID == doctorID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListForPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.PatientID == patientID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListElapsedConfirmed(_ context.Context, date, clock string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Status != string(apdomain.StatusConfirmed) {
			continue
		}
		if ap.Date < date || (ap.Date == date && ap.EndTime <= clock) {
			out = append(out, ap)
		}
	}
	return out, nil
}

// nextDate returns the next clinic-local date (today included) falling on
// the given weekday, so tests never trip the past-date guard.
func nextDate(t *testing.T, weekday time.Weekday) string {
	t.Helper()
	d := timezone.Now()
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestGetAvailabilityReflectsBookings(t *testing.T) {
	monday := nextDate(t, time.Monday)

	templates := &fakeTemplates{templates: map[string][]domain.Interval{
		"Monday": {
			{Start: "09:00", End: "09:30"},
			{Start: "09:30", End: "10:00"},
		},
	}}
	ledger := &fakeLedger{appointments: []models.Appointment{
		{ID: 1, DoctorID: 7, PatientID: 3, Date: monday, StartTime: "09:00", EndTime: "09:30", Status: "confirmed"},
	}}

	uc := NewGetAvailability(templates, ledger, nil)

	slots, err := uc.Execute(context.Background(), 7, monday)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []domain.DerivedSlot{
		{Start: "09:00", End: "09:30", Booked: true},
		{Start: "09:30", End: "10:00", Booked: false},
	}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot[%d] = %+v, want %+v", i, slots[i], want[i])
		}
	}
}

func TestGetAvailabilityEmptyTemplate(t *testing.T) {
	sunday := nextDate(t, time.Sunday)

	templates := &fakeTemplates{templates: map[string][]domain.Interval{}}
	uc := NewGetAvailability(templates, &fakeLedger{}, nil)

	slots, err := uc.Execute(context.Background(), 7, sunday)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %d slots for an unset weekday, want 0", len(slots))
	}
}

func TestGetAvailabilityRejectsPastDate(t *testing.T) {
	yesterday := timezone.Now().AddDate(0, 0, -1).Format("2006-01-02")

	uc := NewGetAvailability(
		&fakeTemplates{templates: map[string][]domain.Interval{}},
		&fakeLedger{},
		nil,
	)

	_, err := uc.Execute(context.Background(), 7, yesterday)
	if !httperr.IsBusiness(err, "date_in_past") {
		t.Fatalf("Execute() = %v, want date_in_past", err)
	}

	_, err = uc.Execute(context.Background(), 7, "not-a-date")
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("Execute() = %v, want invalid_date", err)
	}
}

func TestCancellationFreesSlot(t *testing.T) {
	tuesday := nextDate(t, time.Tuesday)

	templates := &fakeTemplates{templates: map[string][]domain.Interval{
		"Tuesday": {{Start: "14:00", End: "14:30"}},
	}}
	ledger := &fakeLedger{appointments: []models.Appointment{
		{ID: 1, DoctorID: 7, PatientID: 3, Date: tuesday, StartTime: "14:00", EndTime: "14:30", Status: "booked"},
	}}

	uc := NewGetAvailability(templates, ledger, nil)

	slots, err := uc.Execute(context.Background(), 7, tuesday)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !slots[0].Booked {
		t.Fatal("slot should be booked before cancellation")
	}

	ledger.appointments[0].Status = "cancelled"

	slots, err = uc.Execute(context.Background(), 7, tuesday)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if slots[0].Booked {
		t.Fatal("cancelled appointment must release the slot")
	}
}

func TestSetTemplateValidation(t *testing.T) {
	templates := &fakeTemplates{templates: map[string][]domain.Interval{}}
	uc := NewSetTemplate(templates, nil)

	err := uc.Execute(context.Background(), 7, "Monday", []domain.Interval{
		{Start: "09:00", End: "10:00"},
		{Start: "09:30", End: "10:30"},
	})
	if !httperr.IsBusiness(err, "slot_overlap") {
		t.Fatalf("overlapping template accepted: %v", err)
	}

	err = uc.Execute(context.Background(), 7, "Monday", []domain.Interval{
		{Start: "09:00", End: "08:00"},
	})
	if !httperr.IsBusiness(err, "invalid_interval") {
		t.Fatalf("inverted interval accepted: %v", err)
	}

	err = uc.Execute(context.Background(), 7, "Funday", nil)
	if !httperr.IsBusiness(err, "invalid_weekday") {
		t.Fatalf("bad weekday accepted: %v", err)
	}

	err = uc.Execute(context.Background(), 7, "Monday", []domain.Interval{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
	})
	if err != nil {
		t.Fatalf("touching intervals rejected: %v", err)
	}

	got := templates.templates["Monday"]
	if len(got) != 2 || got[0].Start != "09:00" || got[1].Start != "10:00" {
		t.Fatalf("stored template = %+v", got)
	}
}
