// Package matcher evaluates trip-property commands against a trip list.
//
// Matching is total: a qualifier that does not parse for its property, a
// property that cannot be matched yet, or a trip missing the compared field
// all mean "no match", never an error.
package matcher

import (
	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/ozzus/nextbid/internal/domain/qualifier"
)

// MatchTrips returns the trips affected by cmd, in their input order. The
// command's date range is not evaluated.
func MatchTrips(cmd models.TripPropertyCommand, trips []models.Trip) []models.Trip {
	predicate, ok := predicateFor(cmd)
	if !ok {
		return []models.Trip{}
	}

	matched := make([]models.Trip, 0, len(trips))
	for _, trip := range trips {
		if predicate(trip) {
			matched = append(matched, trip)
		}
	}

	return matched
}

// Matches reports whether a single trip is affected by cmd.
func Matches(cmd models.TripPropertyCommand, trip models.Trip) bool {
	predicate, ok := predicateFor(cmd)
	return ok && predicate(trip)
}

func predicateFor(cmd models.TripPropertyCommand) (func(models.Trip) bool, bool) {
	switch cmd.Property {
	case models.PropertyDestination:
		term, ok := qualifier.ParseDestination(cmd.Qualifier)
		if !ok {
			return nil, false
		}
		return func(t models.Trip) bool { return term.Matches(t.Route) }, true

	case models.PropertyTripLength:
		term, ok := qualifier.ParseLength(cmd.Qualifier)
		if !ok {
			return nil, false
		}
		return func(t models.Trip) bool { return term.Matches(t.TripDays) }, true

	case models.PropertyCreditTime:
		term, ok := qualifier.ParseTime(cmd.Qualifier)
		if !ok {
			return nil, false
		}
		return func(t models.Trip) bool { return term.Matches(t.TripCredit) }, true

	case models.PropertyTripReportTime:
		term, ok := qualifier.ParseTime(cmd.Qualifier)
		if !ok {
			return nil, false
		}
		return func(t models.Trip) bool { return term.Matches(t.ReportTimeLocal) }, true

	case models.PropertyLayoverWithLength:
		term, ok := qualifier.ParseLayover(cmd.Qualifier)
		if !ok {
			return nil, false
		}
		return func(t models.Trip) bool {
			if t.LayoverHoursEstimate == nil {
				return false
			}
			return term.Matches(*t.LayoverHoursEstimate)
		}, true

	default:
		return nil, false
	}
}
