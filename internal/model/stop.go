package model

// Stop is an immutable delivery anchored at a location. Stops are identified
// everywhere in solver state by their index in a Problem's stop slice, not
// by any field of this struct.
type Stop struct {
	Location int
}

// NewStop builds a Stop anchored at the given location index.
func NewStop(location int) Stop {
	return Stop{Location: location}
}
