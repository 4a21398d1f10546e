package domain

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	for _, s := range []Status{"", "arquivado", "Pendente"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestAvailabilityValid(t *testing.T) {
	for _, a := range Availabilities {
		if !a.Valid() {
			t.Fatalf("expected %s to be valid", a)
		}
	}
	if Availability("45_dias").Valid() {
		t.Fatalf("expected 45_dias to be invalid")
	}
}

func TestScheduleValid(t *testing.T) {
	for _, s := range Schedules {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if Schedule("madrugada").Valid() {
		t.Fatalf("expected madrugada to be invalid")
	}
}

func TestVehicleTypeValid(t *testing.T) {
	for _, v := range VehicleTypes {
		if !v.Valid() {
			t.Fatalf("expected %s to be valid", v)
		}
	}
	if VehicleType("trator").Valid() {
		t.Fatalf("expected trator to be invalid")
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleUser.Valid() {
		t.Fatalf("expected admin and user roles to be valid")
	}
	if Role("root").Valid() {
		t.Fatalf("expected root to be invalid")
	}
}
