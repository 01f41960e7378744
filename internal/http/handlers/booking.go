// Package handlers exposes the booking core over HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/suyogshiftcare/shiftcare-booking/internal/appointments"
	"github.com/suyogshiftcare/shiftcare-booking/internal/availability"
	"github.com/suyogshiftcare/shiftcare-booking/internal/doctors"
	"github.com/suyogshiftcare/shiftcare-booking/internal/observability/metrics"
	"github.com/suyogshiftcare/shiftcare-booking/pkg/logging"
)

// BookingHandler handles appointment and schedule requests.
type BookingHandler struct {
	service *appointments.Service
	source  doctors.Source
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewBookingHandler creates the booking handler.
func NewBookingHandler(service *appointments.Service, source doctors.Source, m *metrics.BookingMetrics, logger *logging.Logger) *BookingHandler {
	if service == nil {
		panic("handlers: appointments service required")
	}
	if source == nil {
		panic("handlers: doctor source required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingHandler{service: service, source: source, metrics: m, logger: logger}
}

// HealthCheck handles GET /health requests.
func (h *BookingHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListDoctorsResponse is the response for listing doctors.
type ListDoctorsResponse struct {
	Doctors []doctors.Doctor `json:"doctors"`
	Count   int              `json:"count"`
}

// ListDoctors handles GET /doctors requests.
func (h *BookingHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	list, err := h.source.Doctors(r.Context())
	if err != nil {
		h.logger.Error("failed to load doctors", "error", err)
		http.Error(w, "failed to load doctors", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, ListDoctorsResponse{Doctors: list, Count: len(list)})
}

// GetSchedule handles GET /doctors/{name}/schedule requests, returning the
// full week grid of unavailable/available/booked cells.
func (h *BookingHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		http.Error(w, "missing doctor name", http.StatusBadRequest)
		return
	}

	doctor, err := doctors.Find(r.Context(), h.source, name)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			http.Error(w, "doctor not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load doctors", "error", err)
		http.Error(w, "failed to load doctors", http.StatusBadGateway)
		return
	}

	start := time.Now()
	grid := availability.BuildWeekGrid(r.Context(), doctor.Name, doctor.Timezone, doctor.Availabilities, h.service)
	h.metrics.ObserveScheduleLatency(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, grid)
}

// CreateAppointment handles POST /appointments requests.
func (h *BookingHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointments.NewAppointment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := availability.ParseTime(req.Time); !ok {
		http.Error(w, "time must be a clock string like 9:00AM", http.StatusBadRequest)
		return
	}

	appt, err := h.service.Book(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrSlotBooked) {
			http.Error(w, "slot is already booked", http.StatusConflict)
			return
		}
		h.logger.Error("failed to book appointment", "error", err)
		http.Error(w, "failed to book appointment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, appt)
}

// ListAppointmentsResponse is the response for listing appointments.
type ListAppointmentsResponse struct {
	Appointments []appointments.Appointment `json:"appointments"`
	Count        int                        `json:"count"`
}

// ListAppointments handles GET /appointments requests. Appointments are
// returned newest first.
func (h *BookingHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	list := h.service.List(r.Context())
	writeJSON(w, http.StatusOK, ListAppointmentsResponse{Appointments: list, Count: len(list)})
}

// DeleteAppointment handles DELETE /appointments/{id} requests.
func (h *BookingHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing appointment id", http.StatusBadRequest)
		return
	}

	deleted, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to cancel appointment", "error", err, "id", id)
		http.Error(w, "failed to cancel appointment", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "appointment not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearAppointments handles DELETE /appointments requests (admin only).
func (h *BookingHandler) ClearAppointments(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelAll(r.Context()); err != nil {
		h.logger.Error("failed to clear appointments", "error", err)
		http.Error(w, "failed to clear appointments", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
