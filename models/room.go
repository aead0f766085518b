package models

// PriceRange is an inclusive price filter for room queries. A nil bound
// leaves that side of the range open.
type PriceRange struct {
	Min *float64
	Max *float64
}
