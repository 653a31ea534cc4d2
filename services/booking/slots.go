package booking

import (
	"fmt"

	"salonbook/models"
)

// The salon works a fixed daily grid of half-hour slots from 09:00 through
// 18:00 inclusive. Every appointment blocks a buffer window around its own
// slot: 1.5 hours before it (travel and setup for an in-home service) and 3
// hours after it (the service itself).
const (
	gridStartHour = 9
	gridEndHour   = 18

	lookbackSlots  = 3 // 1.5h at 30-minute granularity
	lookaheadSlots = 6 // 3h at 30-minute granularity
)

var allTimeSlots = generateTimeSlots()

func generateTimeSlots() []string {
	slots := make([]string, 0, (gridEndHour-gridStartHour)*2+1)
	for hour := gridStartHour; hour <= gridEndHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		if hour < gridEndHour {
			slots = append(slots, fmt.Sprintf("%02d:30", hour))
		}
	}
	return slots
}

// AllTimeSlots returns a copy of the full daily booking grid, in order.
func AllTimeSlots() []string {
	out := make([]string, len(allTimeSlots))
	copy(out, allTimeSlots)
	return out
}

// OnGrid reports whether t is one of the grid slots.
func OnGrid(t string) bool {
	return slotIndex(t) >= 0
}

func slotIndex(t string) int {
	for i, slot := range allTimeSlots {
		if slot == t {
			return i
		}
	}
	return -1
}

// BlockedSlots returns the grid slots made unavailable by the given
// appointments, in grid order. Cancelled appointments contribute nothing, and
// so does an appointment whose time is not on the grid (malformed data is a
// silent no-op, not an error). The result depends only on the set of
// appointment times, not their order.
func BlockedSlots(appointments []models.Appointment) []string {
	blocked := make(map[string]bool)
	for _, appt := range appointments {
		if !appt.Active() {
			continue
		}
		idx := slotIndex(appt.Time)
		if idx < 0 {
			continue
		}
		for i := max(0, idx-lookbackSlots); i <= min(len(allTimeSlots)-1, idx+lookaheadSlots); i++ {
			blocked[allTimeSlots[i]] = true
		}
	}

	out := make([]string, 0, len(blocked))
	for _, slot := range allTimeSlots {
		if blocked[slot] {
			out = append(out, slot)
		}
	}
	return out
}

// ComputeSlots splits the grid into available and blocked slots for the given
// appointments. The two sets are disjoint and together cover the whole grid.
func ComputeSlots(appointments []models.Appointment) (available, blocked []string) {
	blocked = BlockedSlots(appointments)

	isBlocked := make(map[string]bool, len(blocked))
	for _, slot := range blocked {
		isBlocked[slot] = true
	}
	available = make([]string, 0, len(allTimeSlots)-len(blocked))
	for _, slot := range allTimeSlots {
		if !isBlocked[slot] {
			available = append(available, slot)
		}
	}
	return available, blocked
}
