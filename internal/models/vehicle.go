// Package models defines the wire types exchanged with the fleet service.
package models

// Vehicle is a tracked asset record. The ID is assigned by the server and
// never mutated client-side.
type Vehicle struct {
	ID            int    `json:"id"`
	LicenseNumber string `json:"license_number"`
	ToolCode      string `json:"tool_code"`
	Status        string `json:"status"`
}

// VehiclePayload is the request body for create and update operations.
type VehiclePayload struct {
	LicenseNumber string `json:"license_number"`
	ToolCode      string `json:"tool_code"`
	Status        string `json:"status"`
}

// FindVehicle returns the vehicle with the given ID from a slice, or false
// when no such vehicle is present.
func FindVehicle(vehicles []Vehicle, id int) (Vehicle, bool) {
	for _, v := range vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}
