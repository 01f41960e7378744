package availability

// The booking grid spans 06:00 inclusive to 20:00 exclusive in 30-minute
// steps: 28 slots per day.
const (
	gridStartHour = 6
	gridEndHour   = 20
	slotMinutes   = 30
)

// TimeSlot is one bookable grid time, carrying both the canonical display
// string and its minutes since midnight.
type TimeSlot struct {
	Time    string `json:"time"`
	Minutes int    `json:"minutes"`
}

// TimeSlots enumerates every grid slot in chronological order.
func TimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, (gridEndHour-gridStartHour)*60/slotMinutes)
	for m := gridStartHour * 60; m < gridEndHour*60; m += slotMinutes {
		slots = append(slots, TimeSlot{Time: FormatTime(m), Minutes: m})
	}
	return slots
}
