package models

// AvailableSlotsResult is the answer to an availability query for one date.
// Available and Blocked partition AllSlots: together they cover the full grid
// and never overlap. On a closed day Available is empty and Blocked is the
// whole grid.
type AvailableSlotsResult struct {
	Available []string `json:"availableSlots"`
	Blocked   []string `json:"blockedSlots"`
	AllSlots  []string `json:"allTimeSlots"`
	Closed    bool     `json:"closed"`
}
