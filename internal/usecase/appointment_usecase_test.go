package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"careconnect-backend/internal/delivery/dto"
	"careconnect-backend/internal/delivery/http/middleware"
	"careconnect-backend/internal/domain/entity"
	"careconnect-backend/internal/schedule"

	"gorm.io/gorm"
)

func TestHoursUntil(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		date  time.Time
		clock string
		want  float64
	}{
		{
			name:  "same day afternoon",
			date:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			clock: "02:00 PM",
			want:  6,
		},
		{
			name:  "next day morning",
			date:  time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			clock: "09:00 AM",
			want:  25,
		},
		{
			name:  "already past",
			date:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			clock: "07:00 AM",
			want:  -1,
		},
		{
			name:  "midnight boundary",
			date:  time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			clock: "12:00 AM",
			want:  16,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HoursUntil(now, tc.date, tc.clock)
			if err != nil {
				t.Fatalf("HoursUntil: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %.2f hours, want %.2f", got, tc.want)
			}
		})
	}
}

func TestHoursUntilInvalidClock(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	if _, err := HoursUntil(now, now, "25:00 XX"); err == nil {
		t.Error("expected an error for an unparsable clock string")
	}
}

// The 12-hour cutoff boundary: 12h01m out may still reschedule, 11h59m
// out may not.
func TestRescheduleCutoffBoundary(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	justOutside, err := HoursUntil(now, date, "08:01 PM")
	if err != nil {
		t.Fatal(err)
	}
	if justOutside < rescheduleCutoff.Hours() {
		t.Errorf("20:01 is %.4f hours out, expected at least the %v cutoff", justOutside, rescheduleCutoff)
	}

	justInside, err := HoursUntil(now, date, "07:59 PM")
	if err != nil {
		t.Fatal(err)
	}
	if justInside >= rescheduleCutoff.Hours() {
		t.Errorf("19:59 is %.4f hours out, expected it inside the %v cutoff", justInside, rescheduleCutoff)
	}
}

type stubVisitRepo struct {
	created *entity.Visit
}

func (s *stubVisitRepo) Create(db *gorm.DB, visit *entity.Visit) error {
	s.created = visit
	return nil
}
func (s *stubVisitRepo) FindByUser(*gorm.DB, int) ([]entity.Visit, error) { return nil, nil }
func (s *stubVisitRepo) FindRecentCompletedByUser(*gorm.DB, int, int) ([]entity.Visit, error) {
	return nil, nil
}

// soonAppointment builds an upcoming appointment a few hours out,
// inside the reschedule cutoff.
func soonAppointment(userID int) *entity.Appointment {
	start := time.Now().Add(3 * time.Hour)
	return &entity.Appointment{
		ID:              5,
		UserID:          userID,
		DoctorID:        1,
		AppointmentDate: startOfDay(start),
		AppointmentTime: schedule.FormatClock(start.Hour()*60 + start.Minute()),
		Type:            "General Consultation",
		Status:          entity.AppointmentStatusUpcoming,
		CanReschedule:   true,
	}
}

// Cancelling has no lead-time requirement: a patient who falls ill
// three hours before the visit can still free the slot.
func TestCancelInsideRescheduleCutoff(t *testing.T) {
	appointments := &stubAppointmentRepo{stored: soonAppointment(7)}
	u := NewAppointmentUsecase(newStubDB(t), quietLogger(), appointments, &stubVisitRepo{}, &stubDoctorRepo{})

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, 7)
	if err := u.Cancel(ctx, 5); err != nil {
		t.Fatalf("Cancel three hours before the start: %v", err)
	}

	if appointments.updated == nil {
		t.Fatal("cancellation was not persisted")
	}
	if appointments.updated.Status != entity.AppointmentStatusCancelled {
		t.Errorf("status = %s, want %s", appointments.updated.Status, entity.AppointmentStatusCancelled)
	}
	if appointments.updated.CanReschedule {
		t.Error("a cancelled appointment must not be reschedulable")
	}
}

// Rescheduling, unlike cancelling, is still rejected inside the cutoff.
func TestUpdateInsideRescheduleCutoffRejected(t *testing.T) {
	appointments := &stubAppointmentRepo{stored: soonAppointment(7)}
	u := NewAppointmentUsecase(newStubDB(t), quietLogger(), appointments, &stubVisitRepo{}, &stubDoctorRepo{})

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, 7)
	_, err := u.Update(ctx, 5, &dto.UpdateAppointmentRequest{Notes: "bring previous results"})
	if !errors.Is(err, ErrRescheduleTooLate) {
		t.Errorf("Update three hours before the start: got %v, want %v", err, ErrRescheduleTooLate)
	}
}

func TestStartOfDayUsesLocalMidnight(t *testing.T) {
	zone := time.FixedZone("UTC+1", 3600)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"just after midnight", time.Date(2026, 8, 24, 0, 30, 0, 0, zone)},
		{"just before midnight", time.Date(2026, 8, 24, 23, 30, 0, 0, zone)},
		{"midday", time.Date(2026, 8, 24, 12, 0, 0, 0, zone)},
	}

	want := time.Date(2026, 8, 24, 0, 0, 0, 0, zone)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := startOfDay(tc.in)
			if !got.Equal(want) {
				t.Errorf("startOfDay(%v) = %v, want %v", tc.in, got, want)
			}
			if got.Location() != zone {
				t.Errorf("location = %v, want %v", got.Location(), zone)
			}
		})
	}
}
