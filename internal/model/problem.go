package model

import (
	"encoding/json"
	"fmt"
)

// View is the uniform read-only accessor the solvers are written against.
// Any concrete type satisfying it can stand in for a Problem; the engine
// never depends on the concrete Problem type directly.
type View interface {
	VehicleCount() int
	VehicleStartLocation(index int) int
	VehicleEndLocation(index int) int

	StopCount() int
	StopLocation(index int) int

	LocationCount() int
	Location(index int) Location
}

// Problem is three ordered sequences — vehicles, stops, locations — plus
// the invariant that every index used elsewhere resolves within them.
// Problems are immutable once built and are never mutated during a solve.
type Problem struct {
	vehicles  []Vehicle
	stops     []Stop
	locations []Location
}

// NewProblem validates and builds a Problem. It returns ErrInvalidProblem if
// any vehicle or stop refers to a location outside the location table.
func NewProblem(vehicles []Vehicle, stops []Stop, locations []Location) (*Problem, error) {
	p := &Problem{vehicles: vehicles, stops: stops, locations: locations}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ErrInvalidProblem is returned when a Problem's indices fall outside its
// location table, surfaced by the CLI layer with a nonzero exit; it is never
// raised mid-solve since Problems are validated at construction.
type ErrInvalidProblem struct {
	Reason string
}

func (e *ErrInvalidProblem) Error() string {
	return fmt.Sprintf("invalid problem: %s", e.Reason)
}

func (p *Problem) validate() error {
	n := len(p.locations)
	for i, v := range p.vehicles {
		if v.StartLocation < 0 || v.StartLocation >= n {
			return &ErrInvalidProblem{Reason: fmt.Sprintf("vehicle %d start_location %d out of range [0,%d)", i, v.StartLocation, n)}
		}
		if v.EndLocation < 0 || v.EndLocation >= n {
			return &ErrInvalidProblem{Reason: fmt.Sprintf("vehicle %d end_location %d out of range [0,%d)", i, v.EndLocation, n)}
		}
	}
	for i, s := range p.stops {
		if s.Location < 0 || s.Location >= n {
			return &ErrInvalidProblem{Reason: fmt.Sprintf("stop %d location %d out of range [0,%d)", i, s.Location, n)}
		}
	}
	return nil
}

func (p *Problem) Vehicles() []Vehicle   { return p.vehicles }
func (p *Problem) Stops() []Stop         { return p.stops }
func (p *Problem) Locations() []Location { return p.locations }

func (p *Problem) VehicleCount() int                { return len(p.vehicles) }
func (p *Problem) VehicleStartLocation(i int) int   { return p.vehicles[i].StartLocation }
func (p *Problem) VehicleEndLocation(i int) int     { return p.vehicles[i].EndLocation }
func (p *Problem) StopCount() int                   { return len(p.stops) }
func (p *Problem) StopLocation(i int) int           { return p.stops[i].Location }
func (p *Problem) LocationCount() int               { return len(p.locations) }
func (p *Problem) Location(i int) Location          { return p.locations[i] }

// jsonVehicle, jsonStop and jsonLocation mirror the wire schema exactly
// (0-based indices, the field names below).
type jsonVehicle struct {
	StartLocation int `json:"start_location"`
	EndLocation   int `json:"end_location"`
}

type jsonStop struct {
	Location int `json:"location"`
}

type jsonLocation struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type jsonProblem struct {
	Vehicles  []jsonVehicle  `json:"vehicles"`
	Stops     []jsonStop     `json:"stops"`
	Locations []jsonLocation `json:"locations"`
}

// MarshalJSON renders the Problem in the wire schema above.
func (p *Problem) MarshalJSON() ([]byte, error) {
	out := jsonProblem{
		Vehicles:  make([]jsonVehicle, len(p.vehicles)),
		Stops:     make([]jsonStop, len(p.stops)),
		Locations: make([]jsonLocation, len(p.locations)),
	}
	for i, v := range p.vehicles {
		out.Vehicles[i] = jsonVehicle{StartLocation: v.StartLocation, EndLocation: v.EndLocation}
	}
	for i, s := range p.stops {
		out.Stops[i] = jsonStop{Location: s.Location}
	}
	for i, l := range p.locations {
		out.Locations[i] = jsonLocation{Longitude: l.Longitude, Latitude: l.Latitude}
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the wire schema above and validates it.
func (p *Problem) UnmarshalJSON(data []byte) error {
	var in jsonProblem
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parse problem: %w", err)
	}

	vehicles := make([]Vehicle, len(in.Vehicles))
	for i, v := range in.Vehicles {
		vehicles[i] = Vehicle{StartLocation: v.StartLocation, EndLocation: v.EndLocation}
	}
	stops := make([]Stop, len(in.Stops))
	for i, s := range in.Stops {
		stops[i] = Stop{Location: s.Location}
	}
	locations := make([]Location, len(in.Locations))
	for i, l := range in.Locations {
		locations[i] = Location{Longitude: l.Longitude, Latitude: l.Latitude}
	}

	built := &Problem{vehicles: vehicles, stops: stops, locations: locations}
	if err := built.validate(); err != nil {
		return err
	}

	*p = *built
	return nil
}
