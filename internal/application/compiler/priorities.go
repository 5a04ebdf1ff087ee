package compiler

// Facet identifies the source of a compiled candidate.
type Facet string

const (
	FacetDestinationAward  Facet = "destination_award"
	FacetDestinationAvoid  Facet = "destination_avoid"
	FacetPreferredFallback Facet = "preferred_fallback"
	FacetAvoidFallback     Facet = "avoid_fallback"
	FacetTripLength        Facet = "trip_length"
	FacetLongTripPrimary   Facet = "long_trip_primary"
	FacetLongTripSecondary Facet = "long_trip_secondary"
	FacetLongLayover       Facet = "long_layover"
	FacetReserveProtection Facet = "reserve_protection"
	FacetEarliestReport    Facet = "earliest_report"
	FacetLatestReport      Facet = "latest_report"
)

// Priority scores the i-th candidate of a facet as Base - Step*i.
type Priority struct {
	Base int
	Step int
}

func (p Priority) At(i int) int {
	return p.Base - p.Step*i
}

// Priorities is the single source of candidate scores. Higher scores are
// emitted first.
var Priorities = map[Facet]Priority{
	FacetDestinationAvoid:  {Base: 130, Step: 2},
	FacetAvoidFallback:     {Base: 120},
	FacetDestinationAward:  {Base: 110, Step: 2},
	FacetPreferredFallback: {Base: 100, Step: 10},
	FacetReserveProtection: {Base: 90},
	FacetEarliestReport:    {Base: 85},
	FacetTripLength:        {Base: 80, Step: 3},
	FacetLongTripPrimary:   {Base: 80},
	FacetLatestReport:      {Base: 75},
	FacetLongLayover:       {Base: 70},
	FacetLongTripSecondary: {Base: 60},
}
