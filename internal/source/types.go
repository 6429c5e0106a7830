package source

// Coordinate is a single ISS ground-track fix.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the coordinate is within geographic bounds.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// CrewMember is one person currently in space.
type CrewMember struct {
	Name  string
	Craft string
}

// CrewRoster is the onboard crew report.
// Number and People are populated independently from the upstream payload —
// the API reports them as separate fields and they are never reconciled
// against each other.
type CrewRoster struct {
	Number int
	People []CrewMember
}
