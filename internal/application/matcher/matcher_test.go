package matcher

import (
	"testing"

	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func sampleTrips() []models.Trip {
	return []models.Trip{
		{TripNumber: "7024", Route: "LHR – MLE – LHR (BA061/060)", TripDays: 4, TripCredit: "21:50", ReportTimeLocal: "07:15", LayoverHoursEstimate: floatPtr(48)},
		{TripNumber: "7202", Route: "LHR – LAX – LHR (BA283/282)", TripDays: 4, TripCredit: "21:55"},
		{TripNumber: "7174", Route: "LHR – JFK – LHR (BA173/176)", TripDays: 3, TripCredit: "11:30", ReportTimeLocal: "09:40", LayoverHoursEstimate: floatPtr(24)},
		{TripNumber: "8001", Route: "LHR – AMS – LHR", TripDays: 5, TripCredit: "bad", ReportTimeLocal: "6:5"},
	}
}

func numbers(trips []models.Trip) []string {
	out := make([]string, 0, len(trips))
	for _, t := range trips {
		out = append(out, t.TripNumber)
	}
	return out
}

func cmd(property models.TripProperty, q string) models.TripPropertyCommand {
	return models.TripPropertyCommand{Kind: models.CommandAward, Property: property, Qualifier: q}
}

func TestMatchTrips_Destination(t *testing.T) {
	got := MatchTrips(cmd(models.PropertyDestination, "mle"), sampleTrips())
	assert.Equal(t, []string{"7024"}, numbers(got))
}

func TestMatchTrips_TripLength(t *testing.T) {
	trips := sampleTrips()

	assert.Equal(t, []string{"7024", "7202"}, numbers(MatchTrips(cmd(models.PropertyTripLength, "4D"), trips)))
	assert.Equal(t, []string{"7024", "7202", "8001"}, numbers(MatchTrips(cmd(models.PropertyTripLength, "4-5D"), trips)))
	assert.Equal(t, []string{"7024", "7202", "8001"}, numbers(MatchTrips(cmd(models.PropertyTripLength, ">= 4D"), trips)))
	assert.Equal(t, []string{"7174"}, numbers(MatchTrips(cmd(models.PropertyTripLength, "<=3D"), trips)))
}

func TestMatchTrips_ReportTimeSkipsMissingAndMalformed(t *testing.T) {
	avoid := models.TripPropertyCommand{Kind: models.CommandAvoid, Property: models.PropertyTripReportTime, Qualifier: "< 07:30"}
	assert.Equal(t, []string{"7024"}, numbers(MatchTrips(avoid, sampleTrips())))

	later := cmd(models.PropertyTripReportTime, "> 08:00")
	assert.Equal(t, []string{"7174"}, numbers(MatchTrips(later, sampleTrips())))
}

func TestMatchTrips_Credit(t *testing.T) {
	got := MatchTrips(cmd(models.PropertyCreditTime, "< 12:00"), sampleTrips())
	assert.Equal(t, []string{"7174"}, numbers(got))
}

func TestMatchTrips_Layover(t *testing.T) {
	got := MatchTrips(cmd(models.PropertyLayoverWithLength, ">= 36:00"), sampleTrips())
	assert.Equal(t, []string{"7024"}, numbers(got))

	got = MatchTrips(cmd(models.PropertyLayoverWithLength, "< 30"), sampleTrips())
	assert.Equal(t, []string{"7174"}, numbers(got))
}

func TestMatchTrips_DegradesToEmpty(t *testing.T) {
	tests := []models.TripPropertyCommand{
		cmd(models.PropertyTripLength, "abc"),
		cmd(models.PropertyTripLength, ""),
		cmd(models.PropertyDestination, ""),
		cmd(models.PropertyCreditTime, "twelve hours"),
		cmd(models.PropertyLayoverWithLength, "long"),
		cmd(models.PropertyTripNumber, "7024"),
		cmd(models.PropertyBlockTime, "< 10:00"),
		cmd("SOMETHING_ELSE", "x"),
	}

	for _, c := range tests {
		got := MatchTrips(c, sampleTrips())
		require.NotNil(t, got, "%s %q", c.Property, c.Qualifier)
		assert.Empty(t, got, "%s %q", c.Property, c.Qualifier)
	}
}

func TestMatchTrips_PreservesOrderAndIgnoresDateRange(t *testing.T) {
	c := cmd(models.PropertyTripLength, ">= 3D")
	c.DateRange = &models.DateRange{From: "2030-01-01", To: "2030-01-02"}

	got := MatchTrips(c, sampleTrips())
	assert.Equal(t, []string{"7024", "7202", "7174", "8001"}, numbers(got))
}

func TestMatchTrips_EmptyCatalog(t *testing.T) {
	got := MatchTrips(cmd(models.PropertyDestination, "MLE"), nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatches(t *testing.T) {
	trips := sampleTrips()
	assert.True(t, Matches(cmd(models.PropertyDestination, "JFK"), trips[2]))
	assert.False(t, Matches(cmd(models.PropertyDestination, "JFK"), trips[0]))
	assert.False(t, Matches(cmd(models.PropertyTripLength, "abc"), trips[0]))
}
