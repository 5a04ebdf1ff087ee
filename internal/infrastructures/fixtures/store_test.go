package fixtures

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/models"
)

const testProfiles = `
profiles:
  - id: oli
    name: Oli – 777 FO
    fleet: B777
    seat: FO
    seniority_number: 1234
    preferred_destinations: [DXB, ATL]
    avoid_destinations: [BOM]
    prefer_long_trips: true
    prefer_long_layovers: true
    reserve_avoidance_level: AVOID
  - id: sam
    name: Sam – 787 CPT
    destination_rules:
      - mode: AWARD
        qualifier: mle
        trip_pool: H++
    trip_length_rules:
      - mode: AVOID
        min_days: 2
        max_days: 2
    reserve_avoidance_level: HATE
`

const testTrips = `
trips:
  - trip_number: "7024"
    route: LHR – MLE – LHR (BA061/060)
    departure_base: LHR
    planning_period: Jan 2026
    trip_credit: "21:50"
    trip_days: 4
  - trip_number: "8101"
    route: LHR – DXB – LHR (BA107/106)
    departure_base: LHR
    planning_period: Feb 2026
    trip_credit: "14:10"
    trip_days: 3
    layover_hours_estimate: 40.5
    report_time_local: "06:45"
`

func writeFixtures(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, profilesFile), []byte(testProfiles), 0o644); err != nil {
		t.Fatalf("write profiles: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, tripsFile), []byte(testTrips), 0o644); err != nil {
		t.Fatalf("write trips: %v", err)
	}
	return dir
}

func TestGetProfile_DecodesRules(t *testing.T) {
	store := NewFileStore(writeFixtures(t))

	got, err := store.GetProfile(context.Background(), "SAM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.DestinationRules) != 1 || got.DestinationRules[0].TripPool != models.PoolHighest {
		t.Fatalf("unexpected destination rules: %+v", got.DestinationRules)
	}
	if len(got.TripLengthRules) != 1 || got.TripLengthRules[0].MaxDays == nil || *got.TripLengthRules[0].MaxDays != 2 {
		t.Fatalf("unexpected trip length rules: %+v", got.TripLengthRules)
	}
	if got.ReserveAvoidanceLevel != models.ReserveHate {
		t.Fatalf("unexpected reserve level: %q", got.ReserveAvoidanceLevel)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	store := NewFileStore(writeFixtures(t))

	_, err := store.GetProfile(context.Background(), "nobody")
	if !errors.Is(err, derr.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestListTrips_FiltersByPeriod(t *testing.T) {
	store := NewFileStore(writeFixtures(t))

	all, err := store.ListTrips(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unexpected trips count: %d", len(all))
	}

	feb, err := store.ListTrips(context.Background(), "feb 2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feb) != 1 || feb[0].TripNumber != "8101" {
		t.Fatalf("unexpected february trips: %+v", feb)
	}
	if feb[0].LayoverHoursEstimate == nil || *feb[0].LayoverHoursEstimate != 40.5 {
		t.Fatalf("unexpected layover estimate: %v", feb[0].LayoverHoursEstimate)
	}
}

func TestListTrips_UnknownFieldIsError(t *testing.T) {
	dir := t.TempDir()
	data := "trips:\n  - trip_number: \"1\"\n    colour: red\n"
	if err := os.WriteFile(filepath.Join(dir, tripsFile), []byte(data), 0o644); err != nil {
		t.Fatalf("write trips: %v", err)
	}

	if _, err := NewFileStore(dir).ListTrips(context.Background(), ""); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestListTrips_MissingFile(t *testing.T) {
	if _, err := NewFileStore(t.TempDir()).ListTrips(context.Background(), ""); err == nil {
		t.Fatal("expected error for missing trips file")
	}
}
