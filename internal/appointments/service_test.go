package appointments

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/suyogshiftcare/shiftcare-booking/internal/kvstore"
	"github.com/suyogshiftcare/shiftcare-booking/internal/observability/metrics"
	"github.com/suyogshiftcare/shiftcare-booking/pkg/logging"
)

func newTestService(t *testing.T) (*Service, kvstore.Store) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	store := NewStore(kv, logging.Default())
	m := metrics.NewBookingMetrics(prometheus.NewRegistry())
	return NewService(store, logging.Default(), m), kv
}

func TestServiceBookThenConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	appt, err := svc.Book(ctx, sampleRequest())
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appt.ID == "" {
		t.Fatal("expected booked appointment with id")
	}

	if _, err := svc.Book(ctx, sampleRequest()); !errors.Is(err, ErrSlotBooked) {
		t.Fatalf("expected ErrSlotBooked, got %v", err)
	}
}

func TestServiceCancel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	appt, err := svc.Book(ctx, sampleRequest())
	if err != nil {
		t.Fatal(err)
	}

	deleted, err := svc.Cancel(ctx, appt.ID)
	if err != nil || !deleted {
		t.Fatalf("Cancel = (%v, %v), want (true, nil)", deleted, err)
	}

	deleted, err = svc.Cancel(ctx, appt.ID)
	if err != nil {
		t.Fatalf("second Cancel returned error: %v", err)
	}
	if deleted {
		t.Fatal("expected false for unknown id")
	}
}

func TestServiceListSortsNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Book(ctx, NewAppointment{DoctorName: "Dr. Smith", DayOfWeek: "Monday", Time: "9:00AM"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Book(ctx, NewAppointment{DoctorName: "Dr. Smith", DayOfWeek: "Tuesday", Time: "9:00AM"})
	if err != nil {
		t.Fatal(err)
	}

	list := svc.List(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(list))
	}
	if list[0].CreatedAt < list[1].CreatedAt {
		t.Fatal("expected newest first")
	}
	// Same-millisecond bookings fall back to weekday order.
	if list[0].CreatedAt == list[1].CreatedAt && list[0].ID != first.ID {
		t.Fatalf("expected Monday booking first on tie, got %s", list[0].DayOfWeek)
	}
	_ = second
}

func TestServiceListFailsOpenOnCorruptStorage(t *testing.T) {
	svc, kv := newTestService(t)
	ctx := context.Background()

	if err := kv.Set(ctx, StorageKey, "corrupt"); err != nil {
		t.Fatal(err)
	}
	list := svc.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(list))
	}

	// A fresh booking replaces the unreadable payload.
	if _, err := svc.Book(ctx, sampleRequest()); err != nil {
		t.Fatalf("Book after corruption returned error: %v", err)
	}
	if len(svc.List(ctx)) != 1 {
		t.Fatal("expected booking to start a fresh list")
	}
}

func TestServiceCancelAll(t *testing.T) {
	svc, kv := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Book(ctx, sampleRequest()); err != nil {
		t.Fatal(err)
	}
	if err := svc.CancelAll(ctx); err != nil {
		t.Fatalf("CancelAll returned error: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, StorageKey); ok {
		t.Fatal("expected storage key removed")
	}
}
