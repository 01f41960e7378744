package doctors

import (
	"github.com/suyogshiftcare/shiftcare-booking/internal/availability"
)

// Row is one record of the upstream availability feed: a single open
// interval for one doctor on one weekday. A doctor with no row for a
// weekday is closed that day.
type Row struct {
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	DayOfWeek      string `json:"day_of_week"`
	AvailableAt    string `json:"available_at"`
	AvailableUntil string `json:"available_until"`
}

// Doctor groups a doctor's feed rows into one record with their weekly
// open intervals.
type Doctor struct {
	Name           string                  `json:"name"`
	Timezone       string                  `json:"timezone"`
	Availabilities []availability.Interval `json:"availabilities"`
}

// GroupByDoctor folds feed rows into one Doctor per name, keeping
// first-seen order of doctors and of each doctor's rows. The timezone of
// the first row wins.
func GroupByDoctor(rows []Row) []Doctor {
	index := make(map[string]int)
	grouped := make([]Doctor, 0)

	for _, row := range rows {
		i, seen := index[row.Name]
		if !seen {
			i = len(grouped)
			index[row.Name] = i
			grouped = append(grouped, Doctor{Name: row.Name, Timezone: row.Timezone})
		}
		grouped[i].Availabilities = append(grouped[i].Availabilities, availability.Interval{
			DayOfWeek:      row.DayOfWeek,
			AvailableAt:    row.AvailableAt,
			AvailableUntil: row.AvailableUntil,
		})
	}
	return grouped
}
