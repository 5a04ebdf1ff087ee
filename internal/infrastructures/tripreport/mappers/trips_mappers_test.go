package mappers

import (
	"testing"

	"github.com/ozzus/nextbid/internal/infrastructures/tripreport/dto"
)

func TestToTrips_DropsUnnumberedAndDuplicates(t *testing.T) {
	got := ToTrips([]dto.TripRecord{
		{TripNumber: "7024", Route: "LHR – MLE – LHR", TripDays: 4},
		{TripNumber: "  ", Route: "LHR – DXB – LHR", TripDays: 3},
		{TripNumber: "7024", Route: "LHR – MLE – LHR (dup)", TripDays: 4},
		{TripNumber: "7174", Route: "LHR – JFK – LHR", TripDays: 3},
	})

	if len(got) != 2 {
		t.Fatalf("unexpected trips count: got %d want 2", len(got))
	}
	if got[0].TripNumber != "7024" || got[0].Route != "LHR – MLE – LHR" {
		t.Fatalf("expected first 7024 record to win, got %+v", got[0])
	}
	if got[1].TripNumber != "7174" {
		t.Fatalf("unexpected second trip: %+v", got[1])
	}
}

func TestToTrips_TrimsClockFields(t *testing.T) {
	layover := 36.5
	got := ToTrips([]dto.TripRecord{{
		TripNumber:      " 7202 ",
		DepartureBase:   "lhr",
		TripCredit:      " 21:55 ",
		ReportTimeLocal: "07:15 ",
		LayoverHours:    &layover,
	}})

	if len(got) != 1 {
		t.Fatalf("unexpected trips count: %d", len(got))
	}
	trip := got[0]
	if trip.TripNumber != "7202" || trip.TripCredit != "21:55" || trip.ReportTimeLocal != "07:15" {
		t.Fatalf("fields were not trimmed: %+v", trip)
	}
	if trip.DepartureBase != "LHR" {
		t.Fatalf("unexpected base: %q", trip.DepartureBase)
	}
	if trip.LayoverHoursEstimate == nil || *trip.LayoverHoursEstimate != 36.5 {
		t.Fatalf("unexpected layover estimate: %v", trip.LayoverHoursEstimate)
	}
}

func TestToTrips_ReturnsEmptySliceWhenNothingUsable(t *testing.T) {
	got := ToTrips([]dto.TripRecord{{TripNumber: ""}})
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
