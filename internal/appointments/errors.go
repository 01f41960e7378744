package appointments

import "errors"

var (
	// ErrSlotBooked is returned when the doctor/day/time slot already
	// holds an appointment
	ErrSlotBooked = errors.New("slot is already booked")

	// ErrCorrupted is returned when the stored payload cannot be decoded
	ErrCorrupted = errors.New("stored appointments are corrupted")

	// ErrMissingDoctor is returned when the doctor name is blank
	ErrMissingDoctor = errors.New("doctor name is required")

	// ErrInvalidDay is returned when the day is not a full weekday name
	ErrInvalidDay = errors.New("day of week must be a full weekday name")

	// ErrMissingTime is returned when the time is blank
	ErrMissingTime = errors.New("time is required")
)
