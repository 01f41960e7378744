package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/suyogshiftcare/shiftcare-booking/internal/kvstore"
	"github.com/suyogshiftcare/shiftcare-booking/pkg/logging"
)

// StorageKey is the single key the appointment list lives under. The value
// is always the full JSON-serialized list in insertion order.
const StorageKey = "appointments"

// Store provides durable CRUD over the appointment list. Every mutation is
// a full read-modify-write of the serialized list, guarded by a single
// writer lock so concurrent saves cannot discard each other's writes.
type Store struct {
	mu     sync.Mutex
	kv     kvstore.Store
	logger *logging.Logger

	now   func() time.Time
	newID func() string
}

// NewStore creates a store over the given key-value primitive.
func NewStore(kv kvstore.Store, logger *logging.Logger) *Store {
	if kv == nil {
		panic("appointments: kv store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		kv:     kv,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// GetAll returns every stored appointment in insertion order. A missing
// key yields an empty list and nil error. A corrupt payload or failed read
// also yields an empty list, with the cause returned alongside so callers
// can warn; they must still treat the empty list as authoritative.
func (s *Store) GetAll(ctx context.Context) ([]Appointment, error) {
	list, err := s.load(ctx)
	if list == nil {
		list = []Appointment{}
	}
	return list, err
}

// Save appends a new appointment and persists the full list in a single
// write. The booking key (doctorName, dayOfWeek, time) is checked under
// the store lock; a duplicate returns ErrSlotBooked instead of a second
// appointment. Read and write failures from the underlying store are
// surfaced unchanged, never retried. Only a corrupt payload is saved
// over: a transient read failure must not let Save replace a list it
// never saw.
func (s *Store) Save(ctx context.Context, req NewAppointment) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		if !errors.Is(err, ErrCorrupted) {
			return nil, err
		}
		// A corrupt list reads as empty and the next successful save
		// starts a fresh one.
		s.logger.Warn("saving over corrupt appointment list", "error", err)
		list = nil
	}

	for _, a := range list {
		if a.DoctorName == req.DoctorName && a.DayOfWeek == req.DayOfWeek && a.Time == req.Time {
			return nil, ErrSlotBooked
		}
	}

	appt := Appointment{
		ID:             s.newID(),
		DoctorName:     req.DoctorName,
		DoctorTimezone: req.DoctorTimezone,
		DayOfWeek:      req.DayOfWeek,
		Time:           req.Time,
		CreatedAt:      s.now().UnixMilli(),
	}
	list = append(list, appt)

	if err := s.persist(ctx, list); err != nil {
		return nil, err
	}
	return &appt, nil
}

// Delete removes the appointment with the given id. It reports true and
// persists the filtered list only when an entry actually matched; an
// unknown id leaves storage untouched. A corrupt list holds nothing to
// delete and reports false; any other read failure is surfaced.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		if !errors.Is(err, ErrCorrupted) {
			return false, err
		}
		s.logger.Warn("delete against corrupt appointment list", "error", err)
		return false, nil
	}

	filtered := list[:0]
	for _, a := range list {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == len(list) {
		return false, nil
	}

	if err := s.persist(ctx, filtered); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes the storage key entirely rather than writing an empty
// list. Clearing an already-empty store is a no-op that still succeeds.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(ctx, StorageKey); err != nil {
		return fmt.Errorf("appointments: clear: %w", err)
	}
	return nil
}

// IsSlotBooked reports whether some stored appointment matches all three
// fields exactly (case- and whitespace-sensitive). Read failures read as
// not booked.
func (s *Store) IsSlotBooked(ctx context.Context, doctorName, dayOfWeek, timeOfDay string) bool {
	list, err := s.load(ctx)
	if err != nil {
		return false
	}
	for _, a := range list {
		if a.DoctorName == doctorName && a.DayOfWeek == dayOfWeek && a.Time == timeOfDay {
			return true
		}
	}
	return false
}

func (s *Store) load(ctx context.Context) ([]Appointment, error) {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("appointments: read: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var list []Appointment
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.Error("failed to decode stored appointments", "error", err)
		return nil, fmt.Errorf("appointments: decode: %w", ErrCorrupted)
	}
	return list, nil
}

func (s *Store) persist(ctx context.Context, list []Appointment) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("appointments: encode: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("appointments: write: %w", err)
	}
	return nil
}
