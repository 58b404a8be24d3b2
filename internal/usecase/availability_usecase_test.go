package usecase

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"careconnect-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// stubConnPool satisfies gorm's connection interfaces without a real
// database. The stub repositories below never execute SQL, so none of
// these methods are reached; they only keep transaction begin/commit
// from failing.
type stubConnPool struct{}

func (stubConnPool) PrepareContext(context.Context, string) (*sql.Stmt, error) { return nil, nil }
func (stubConnPool) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (stubConnPool) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (stubConnPool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (stubConnPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	return &stubTx{}, nil
}

type stubTx struct{ stubConnPool }

func (*stubTx) Commit() error   { return nil }
func (*stubTx) Rollback() error { return nil }

func newStubDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{ConnPool: stubConnPool{}})
	if err != nil {
		t.Fatalf("failed to open stub db: %v", err)
	}
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type stubDoctorRepo struct {
	doctor *entity.Doctor
}

func (s *stubDoctorRepo) Create(*gorm.DB, *entity.Doctor) error { return nil }
func (s *stubDoctorRepo) FindByID(*gorm.DB, int) (*entity.Doctor, error) {
	return s.doctor, nil
}
func (s *stubDoctorRepo) FindAvailableByID(*gorm.DB, int) (*entity.Doctor, error) {
	return s.doctor, nil
}
func (s *stubDoctorRepo) FindByUserID(*gorm.DB, int) (*entity.Doctor, error) {
	return s.doctor, nil
}
func (s *stubDoctorRepo) FindByLicenseNumber(*gorm.DB, string) (*entity.Doctor, error) {
	return nil, nil
}
func (s *stubDoctorRepo) FindAllAvailable(*gorm.DB) ([]entity.Doctor, error) { return nil, nil }
func (s *stubDoctorRepo) Update(*gorm.DB, *entity.Doctor) error              { return nil }

type stubAvailabilityRepo struct {
	window *entity.DoctorAvailability
}

func (s *stubAvailabilityRepo) Create(*gorm.DB, *entity.DoctorAvailability) error { return nil }
func (s *stubAvailabilityRepo) FindByID(*gorm.DB, int) (*entity.DoctorAvailability, error) {
	return s.window, nil
}
func (s *stubAvailabilityRepo) FindActiveByDoctorAndDay(*gorm.DB, int, int) (*entity.DoctorAvailability, error) {
	return s.window, nil
}
func (s *stubAvailabilityRepo) FindActiveByDoctor(*gorm.DB, int) ([]entity.DoctorAvailability, error) {
	return nil, nil
}
func (s *stubAvailabilityRepo) Update(*gorm.DB, *entity.DoctorAvailability) error { return nil }
func (s *stubAvailabilityRepo) Delete(*gorm.DB, int) (int64, error)               { return 1, nil }

type stubAppointmentRepo struct {
	booked  []entity.Appointment
	stored  *entity.Appointment
	updated *entity.Appointment
}

func (s *stubAppointmentRepo) Create(*gorm.DB, *entity.Appointment) error { return nil }
func (s *stubAppointmentRepo) FindByID(*gorm.DB, int) (*entity.Appointment, error) {
	return s.stored, nil
}
func (s *stubAppointmentRepo) FindByIDAndUser(*gorm.DB, int, int) (*entity.Appointment, error) {
	return s.stored, nil
}
func (s *stubAppointmentRepo) FindByUser(*gorm.DB, int) ([]entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) FindUpcomingByUser(*gorm.DB, int, time.Time) ([]entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) FindBookedByDoctorAndDate(*gorm.DB, int, time.Time) ([]entity.Appointment, error) {
	return s.booked, nil
}
func (s *stubAppointmentRepo) FindUpcomingByDoctor(*gorm.DB, int) ([]entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) FindByDoctorOnDate(*gorm.DB, int, time.Time, entity.AppointmentStatus) ([]entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	s.updated = appointment
	return nil
}
func (s *stubAppointmentRepo) CompleteIfUpcoming(*gorm.DB, int) (int64, error) { return 1, nil }

func newSlotUsecase(t *testing.T, window *entity.DoctorAvailability, appointments *stubAppointmentRepo) AvailabilityUsecase {
	t.Helper()
	doctor := &entity.Doctor{ID: 1, Name: "Sarah Bennani", IsAvailable: true}
	return NewAvailabilityUsecase(
		newStubDB(t),
		quietLogger(),
		&stubDoctorRepo{doctor: doctor},
		&stubAvailabilityRepo{window: window},
		appointments,
	)
}

func wednesdayWindow() *entity.DoctorAvailability {
	return &entity.DoctorAvailability{
		ID:                  1,
		DoctorID:            1,
		DayOfWeek:           2,
		StartTime:           "09:00 AM",
		EndTime:             "05:00 PM",
		SlotDurationMinutes: 30,
		IsActive:            true,
	}
}

func TestGetAvailableSlotsSubtractsBooked(t *testing.T) {
	appointments := &stubAppointmentRepo{
		booked: []entity.Appointment{
			{DoctorID: 1, AppointmentTime: "10:00 AM", Status: entity.AppointmentStatusUpcoming},
		},
	}
	u := newSlotUsecase(t, wednesdayWindow(), appointments)

	// 2026-01-07 is a Wednesday.
	resp, err := u.GetAvailableSlots(context.Background(), 1, "2026-01-07")
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}

	if len(resp.Available) != 15 {
		t.Errorf("got %d available slots, want 15 (16 candidates minus one booking)", len(resp.Available))
	}
	for _, slot := range resp.Available {
		if slot == "10:00 AM" {
			t.Error("booked slot 10:00 AM still listed as available")
		}
	}
	if len(resp.Booked) != 1 || resp.Booked[0] != "10:00 AM" {
		t.Errorf("booked list = %v, want [10:00 AM]", resp.Booked)
	}
	if resp.Available[0] != "09:00 AM" {
		t.Errorf("first slot = %s, want 09:00 AM", resp.Available[0])
	}
	if last := resp.Available[len(resp.Available)-1]; last != "04:30 PM" {
		t.Errorf("last slot = %s, want 04:30 PM", last)
	}
	if resp.WorkingHours == nil || resp.WorkingHours.Start != "09:00 AM" || resp.WorkingHours.End != "05:00 PM" {
		t.Errorf("working hours = %+v, want 09:00 AM-05:00 PM", resp.WorkingHours)
	}
	if resp.SlotDurationMinutes != 30 {
		t.Errorf("slot duration = %d, want 30", resp.SlotDurationMinutes)
	}
}

func TestGetAvailableSlotsNoWindowForWeekday(t *testing.T) {
	u := newSlotUsecase(t, nil, &stubAppointmentRepo{})

	// 2026-01-04 is a Sunday.
	resp, err := u.GetAvailableSlots(context.Background(), 1, "2026-01-04")
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}

	if len(resp.Available) != 0 {
		t.Errorf("got %d available slots, want none", len(resp.Available))
	}
	want := "Dr. Sarah Bennani is not available on Sunday"
	if resp.Message != want {
		t.Errorf("message = %q, want %q", resp.Message, want)
	}
}

// A cancelled booking no longer counts against the slot inventory, so
// its time reappears in the available list.
func TestGetAvailableSlotsFreedByCancellation(t *testing.T) {
	appointments := &stubAppointmentRepo{
		booked: []entity.Appointment{
			{DoctorID: 1, AppointmentTime: "10:00 AM", Status: entity.AppointmentStatusUpcoming},
		},
	}
	u := newSlotUsecase(t, wednesdayWindow(), appointments)

	resp, err := u.GetAvailableSlots(context.Background(), 1, "2026-01-07")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Available) != 15 {
		t.Fatalf("got %d available slots before cancellation, want 15", len(resp.Available))
	}

	// Cancelling drops the row from the non-cancelled booking query.
	appointments.booked = nil

	resp, err = u.GetAvailableSlots(context.Background(), 1, "2026-01-07")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Available) != 16 {
		t.Errorf("got %d available slots after cancellation, want 16", len(resp.Available))
	}
	found := false
	for _, slot := range resp.Available {
		if slot == "10:00 AM" {
			found = true
		}
	}
	if !found {
		t.Error("freed slot 10:00 AM did not reappear")
	}
}
