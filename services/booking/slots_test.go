package booking

import (
	"reflect"
	"testing"

	"salonbook/models"
)

func appointmentAt(t string) models.Appointment {
	return models.Appointment{
		ID:      "test-" + t,
		Name:    "Test",
		Phone:   "555-0000",
		Service: models.ServiceHaircut,
		Date:    "2025-03-10",
		Time:    t,
		Status:  models.StatusPending,
	}
}

func TestAllTimeSlots(t *testing.T) {
	slots := AllTimeSlots()
	if len(slots) != 19 {
		t.Fatalf("expected 19 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "18:00" {
		t.Errorf("expected last slot 18:00, got %s", slots[len(slots)-1])
	}
	if slots[1] != "09:30" || slots[2] != "10:00" {
		t.Errorf("expected half-hour steps, got %s, %s", slots[1], slots[2])
	}
}

func TestComputeSlots_EmptyDay(t *testing.T) {
	available, blocked := ComputeSlots(nil)
	if !reflect.DeepEqual(available, AllTimeSlots()) {
		t.Errorf("expected full grid available, got %v", available)
	}
	if len(blocked) != 0 {
		t.Errorf("expected no blocked slots, got %v", blocked)
	}
}

func TestComputeSlots_Partition(t *testing.T) {
	appts := []models.Appointment{appointmentAt("10:00"), appointmentAt("16:30")}
	available, blocked := ComputeSlots(appts)

	seen := make(map[string]int)
	for _, s := range available {
		seen[s]++
	}
	for _, s := range blocked {
		seen[s]++
	}
	for _, slot := range AllTimeSlots() {
		if seen[slot] != 1 {
			t.Errorf("slot %s appears %d times across available and blocked", slot, seen[slot])
		}
	}
	if len(available)+len(blocked) != 19 {
		t.Errorf("expected partition of 19 slots, got %d + %d", len(available), len(blocked))
	}
}

func TestBlockedSlots_BufferWindow(t *testing.T) {
	// 1.5h lookback and 3h lookahead around 12:00.
	blocked := BlockedSlots([]models.Appointment{appointmentAt("12:00")})
	want := []string{"10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00"}
	if !reflect.DeepEqual(blocked, want) {
		t.Errorf("expected %v, got %v", want, blocked)
	}
}

func TestBlockedSlots_GridEdges(t *testing.T) {
	cases := []struct {
		name string
		time string
		want []string
	}{
		{
			name: "booking at grid start has no lookback",
			time: "09:00",
			want: []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00"},
		},
		{
			name: "booking at grid end has no lookahead",
			time: "18:00",
			want: []string{"16:30", "17:00", "17:30", "18:00"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blocked := BlockedSlots([]models.Appointment{appointmentAt(tc.time)})
			if !reflect.DeepEqual(blocked, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, blocked)
			}
		})
	}
}

func TestBlockedSlots_OffGridTimeIsNoOp(t *testing.T) {
	blocked := BlockedSlots([]models.Appointment{appointmentAt("12:17")})
	if len(blocked) != 0 {
		t.Errorf("off-grid time should block nothing, got %v", blocked)
	}
}

func TestBlockedSlots_CancelledExcluded(t *testing.T) {
	appt := appointmentAt("12:00")
	appt.Status = models.StatusCancelled
	blocked := BlockedSlots([]models.Appointment{appt})
	if len(blocked) != 0 {
		t.Errorf("cancelled appointment should block nothing, got %v", blocked)
	}
}

func TestBlockedSlots_OrderIndependent(t *testing.T) {
	a := BlockedSlots([]models.Appointment{appointmentAt("09:30"), appointmentAt("15:00")})
	b := BlockedSlots([]models.Appointment{appointmentAt("15:00"), appointmentAt("09:30")})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("result depends on input order: %v vs %v", a, b)
	}
}

func TestBlockedSlots_OverlapDeduplicated(t *testing.T) {
	blocked := BlockedSlots([]models.Appointment{appointmentAt("11:00"), appointmentAt("11:30")})
	seen := make(map[string]bool)
	for _, s := range blocked {
		if seen[s] {
			t.Fatalf("slot %s appears twice in %v", s, blocked)
		}
		seen[s] = true
	}
}

func TestOnGrid(t *testing.T) {
	for _, slot := range AllTimeSlots() {
		if !OnGrid(slot) {
			t.Errorf("grid slot %s reported off-grid", slot)
		}
	}
	for _, bad := range []string{"08:30", "18:30", "12:15", "9:00", ""} {
		if OnGrid(bad) {
			t.Errorf("%q should not be on the grid", bad)
		}
	}
}
