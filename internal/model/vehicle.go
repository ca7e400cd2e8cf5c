package model

// Vehicle is an immutable pair of depot location indices: where its route
// must start and where it must end. Indices refer to a Problem's location
// table.
type Vehicle struct {
	StartLocation int
	EndLocation   int
}

// NewVehicle builds a Vehicle from its start and end depot location indices.
func NewVehicle(startLocation, endLocation int) Vehicle {
	return Vehicle{StartLocation: startLocation, EndLocation: endLocation}
}
