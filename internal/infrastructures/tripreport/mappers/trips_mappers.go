package mappers

import (
	"strings"

	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/ozzus/nextbid/internal/infrastructures/tripreport/dto"
)

// ToTrips drops records without a trip number and keeps the first record of
// every trip number, preserving feed order.
func ToTrips(records []dto.TripRecord) []models.Trip {
	trips := make([]models.Trip, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		number := strings.TrimSpace(rec.TripNumber)
		if number == "" {
			continue
		}
		if _, dup := seen[number]; dup {
			continue
		}
		seen[number] = struct{}{}

		trips = append(trips, models.Trip{
			TripNumber:           number,
			Route:                strings.TrimSpace(rec.Route),
			DepartureBase:        strings.ToUpper(strings.TrimSpace(rec.DepartureBase)),
			PlanningPeriod:       strings.TrimSpace(rec.PlanningPeriod),
			TAFB:                 strings.TrimSpace(rec.TAFB),
			TripCredit:           strings.TrimSpace(rec.TripCredit),
			TripDays:             rec.TripDays,
			FlyingHours:          strings.TrimSpace(rec.FlyingHours),
			DutyHours:            strings.TrimSpace(rec.DutyHours),
			LayoverHoursEstimate: rec.LayoverHours,
			ReportTimeLocal:      strings.TrimSpace(rec.ReportTimeLocal),
		})
	}

	return trips
}
