package appointments

import (
	"sort"
	"strings"

	"github.com/suyogshiftcare/shiftcare-booking/internal/availability"
)

// Appointment is a booked slot as persisted in storage. CreatedAt is
// milliseconds since epoch. Field names match the stored JSON exactly;
// there is no schema version.
type Appointment struct {
	ID             string `json:"id"`
	DoctorName     string `json:"doctorName"`
	DoctorTimezone string `json:"doctorTimezone"`
	DayOfWeek      string `json:"dayOfWeek"`
	Time           string `json:"time"`
	CreatedAt      int64  `json:"createdAt"`
}

// NewAppointment is the caller-supplied portion of an appointment. The
// store fills in the id and timestamp.
type NewAppointment struct {
	DoctorName     string `json:"doctorName"`
	DoctorTimezone string `json:"doctorTimezone"`
	DayOfWeek      string `json:"dayOfWeek"`
	Time           string `json:"time"`
}

// Weekdays is the canonical day-name order, shared with the schedule
// grid so a valid booking day is always a valid grid column.
var Weekdays = availability.Weekdays

var weekdayRank = func() map[string]int {
	rank := make(map[string]int, len(Weekdays))
	for i, day := range Weekdays {
		rank[day] = i
	}
	return rank
}()

// IsWeekday reports whether day is one of the seven full names.
// Matching is case-sensitive, same as the booking key.
func IsWeekday(day string) bool {
	_, ok := weekdayRank[day]
	return ok
}

// Validate checks the caller-supplied fields.
func (n *NewAppointment) Validate() error {
	if strings.TrimSpace(n.DoctorName) == "" {
		return ErrMissingDoctor
	}
	if !IsWeekday(n.DayOfWeek) {
		return ErrInvalidDay
	}
	if strings.TrimSpace(n.Time) == "" {
		return ErrMissingTime
	}
	return nil
}

// SortForDisplay orders appointments newest first, breaking ties by
// weekday order Monday through Sunday.
func SortForDisplay(list []Appointment) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt > list[j].CreatedAt
		}
		return weekdayRank[list[i].DayOfWeek] < weekdayRank[list[j].DayOfWeek]
	})
}
