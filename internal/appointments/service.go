package appointments

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/suyogshiftcare/shiftcare-booking/internal/observability/metrics"
	"github.com/suyogshiftcare/shiftcare-booking/pkg/logging"
)

var bookingTracer = otel.Tracer("shiftcare.internal.appointments")

// Service wraps the store with logging, tracing and booking metrics.
type Service struct {
	store   *Store
	logger  *logging.Logger
	metrics *metrics.BookingMetrics
}

// NewService constructs an appointments service.
func NewService(store *Store, logger *logging.Logger, m *metrics.BookingMetrics) *Service {
	if store == nil {
		panic("appointments: store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, logger: logger, metrics: m}
}

// Book saves a new appointment, rejecting an already-booked slot.
func (s *Service) Book(ctx context.Context, req NewAppointment) (*Appointment, error) {
	ctx, span := bookingTracer.Start(ctx, "appointments.book")
	defer span.End()
	span.SetAttributes(
		attribute.String("shiftcare.doctor", req.DoctorName),
		attribute.String("shiftcare.day", req.DayOfWeek),
		attribute.String("shiftcare.time", req.Time),
	)

	appt, err := s.store.Save(ctx, req)
	if err != nil {
		if errors.Is(err, ErrSlotBooked) {
			s.metrics.ObserveBooking("conflict")
			s.logger.Info("booking conflict",
				"doctor", req.DoctorName, "day", req.DayOfWeek, "time", req.Time)
		} else {
			span.RecordError(err)
			s.metrics.ObserveBooking("error")
		}
		return nil, err
	}

	s.metrics.ObserveBooking("created")
	s.logger.Info("appointment booked",
		"id", appt.ID, "doctor", appt.DoctorName, "day", appt.DayOfWeek, "time", appt.Time)
	return appt, nil
}

// Cancel deletes an appointment by id, reporting whether one existed.
func (s *Service) Cancel(ctx context.Context, id string) (bool, error) {
	ctx, span := bookingTracer.Start(ctx, "appointments.cancel")
	defer span.End()
	span.SetAttributes(attribute.String("shiftcare.appointment_id", id))

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveCancellation("error")
		return false, err
	}
	if deleted {
		s.metrics.ObserveCancellation("deleted")
		s.logger.Info("appointment cancelled", "id", id)
	} else {
		s.metrics.ObserveCancellation("not_found")
	}
	return deleted, nil
}

// CancelAll clears every appointment.
func (s *Service) CancelAll(ctx context.Context) error {
	ctx, span := bookingTracer.Start(ctx, "appointments.cancel_all")
	defer span.End()

	if err := s.store.Clear(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	s.logger.Info("all appointments cleared")
	return nil
}

// List returns appointments in display order, newest first. Corrupt
// storage reads as empty with a warning, matching the store's fail-open
// policy.
func (s *Service) List(ctx context.Context) []Appointment {
	list, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Warn("listing appointments from unreadable storage", "error", err)
	}
	SortForDisplay(list)
	return list
}

// IsSlotBooked reports whether the exact booking key is taken.
func (s *Service) IsSlotBooked(ctx context.Context, doctorName, dayOfWeek, timeOfDay string) bool {
	return s.store.IsSlotBooked(ctx, doctorName, dayOfWeek, timeOfDay)
}
