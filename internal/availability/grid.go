package availability

import (
	"context"
	"strings"
)

// Interval is a doctor's declared open range for one weekday. Bounds are
// free-form clock strings, possibly padded with whitespace.
type Interval struct {
	DayOfWeek      string `json:"day_of_week"`
	AvailableAt    string `json:"available_at"`
	AvailableUntil string `json:"available_until"`
}

// SlotState is the derived state of one grid cell.
type SlotState string

const (
	StateUnavailable SlotState = "unavailable"
	StateAvailable   SlotState = "available"
	StateBooked      SlotState = "booked"
)

// Cell is one (day, time) grid entry with its derived state.
type Cell struct {
	Time    string    `json:"time"`
	Minutes int       `json:"minutes"`
	State   SlotState `json:"state"`
}

// DaySchedule is the 28-slot column for a single weekday.
type DaySchedule struct {
	Day   string `json:"day"`
	Slots []Cell `json:"slots"`
}

// WeekGrid is the full 7x28 schedule for one doctor.
type WeekGrid struct {
	DoctorName string        `json:"doctorName"`
	Timezone   string        `json:"timezone"`
	Days       []DaySchedule `json:"days"`
}

// BookingLookup answers whether an exact booking key is taken.
// *appointments.Store satisfies it.
type BookingLookup interface {
	IsSlotBooked(ctx context.Context, doctorName, dayOfWeek, timeOfDay string) bool
}

// Weekdays lists the seven full English day names in grid order. It is
// the canonical list; day names elsewhere (booking keys, validation) are
// matched against it.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// IsSlotOpen reports whether the slot at slotMinutes falls inside the
// day's open interval. The first interval matching the day name is used;
// no interval, or an interval with an unparseable bound, reads as closed.
// The end bound itself is never bookable.
func IsSlotOpen(day string, slotMinutes int, intervals []Interval) bool {
	for _, iv := range intervals {
		if iv.DayOfWeek != day {
			continue
		}
		start, ok := ParseTime(strings.TrimSpace(iv.AvailableAt))
		if !ok {
			return false
		}
		end, ok := ParseTime(strings.TrimSpace(iv.AvailableUntil))
		if !ok {
			return false
		}
		return slotMinutes >= start && slotMinutes < end
	}
	return false
}

// BuildWeekGrid derives the full week of slot states for a doctor. A
// booked cell stays booked even when the underlying interval no longer
// covers it, so an existing appointment never silently disappears from
// the grid.
func BuildWeekGrid(ctx context.Context, doctorName, timezone string, intervals []Interval, lookup BookingLookup) WeekGrid {
	slots := TimeSlots()
	grid := WeekGrid{
		DoctorName: doctorName,
		Timezone:   timezone,
		Days:       make([]DaySchedule, 0, len(Weekdays)),
	}

	for _, day := range Weekdays {
		column := DaySchedule{Day: day, Slots: make([]Cell, 0, len(slots))}
		for _, slot := range slots {
			state := StateUnavailable
			if IsSlotOpen(day, slot.Minutes, intervals) {
				state = StateAvailable
			}
			if lookup != nil && lookup.IsSlotBooked(ctx, doctorName, day, slot.Time) {
				state = StateBooked
			}
			column.Slots = append(column.Slots, Cell{
				Time:    slot.Time,
				Minutes: slot.Minutes,
				State:   state,
			})
		}
		grid.Days = append(grid.Days, column)
	}
	return grid
}
