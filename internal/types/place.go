package types

// Place is a single nearby-search candidate.
// Rating is nil when the provider reported none.
type Place struct {
	Name        string
	Vicinity    string
	Rating      *float64
	Coordinates Coords
}
