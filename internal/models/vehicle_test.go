package models

import "testing"

func TestFindVehicle(t *testing.T) {
	vehicles := []Vehicle{
		{ID: 1, LicenseNumber: "111-11-111"},
		{ID: 2, LicenseNumber: "222-22-222"},
	}

	v, ok := FindVehicle(vehicles, 2)
	if !ok {
		t.Fatal("FindVehicle(2) not found")
	}
	if v.LicenseNumber != "222-22-222" {
		t.Errorf("LicenseNumber = %q, want %q", v.LicenseNumber, "222-22-222")
	}

	if _, ok := FindVehicle(vehicles, 99); ok {
		t.Error("FindVehicle(99) found, want not found")
	}
	if _, ok := FindVehicle(nil, 1); ok {
		t.Error("FindVehicle on nil slice found, want not found")
	}
}
