package planner

import (
	"testing"

	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []models.Trip {
	return []models.Trip{
		{TripNumber: "7024", Route: "LHR – MLE – LHR (BA061/060)", TripDays: 4, TripCredit: "21:50", ReportTimeLocal: "06:40"},
		{TripNumber: "7202", Route: "LHR – LAX – LHR (BA283/282)", TripDays: 4, TripCredit: "21:55"},
		{TripNumber: "7174", Route: "LHR – JFK – LHR (BA173/176)", TripDays: 3, TripCredit: "15:00", ReportTimeLocal: "09:10"},
	}
}

func tripNumbers(trips []models.Trip) []string {
	out := make([]string, 0, len(trips))
	for _, t := range trips {
		out = append(out, t.TripNumber)
	}
	return out
}

func TestPreviewGroup_Demo(t *testing.T) {
	group := Demo777IdealGroup()
	dr := &models.DateRange{From: "2026-01-01", To: "2026-01-31"}

	preview, err := PreviewGroup(group, catalog(), dr)
	require.NoError(t, err)
	require.Len(t, preview.Commands, 3)
	assert.Equal(t, group.ID, preview.Group.ID)

	length := preview.Commands[0]
	assert.Equal(t, "AWARD TLEN 4D 2026-01-01-2026-01-31 [H+] MAX 3", length.Rendered)
	assert.Equal(t, []string{"7024", "7202"}, tripNumbers(length.MatchedTrips))
	assert.Equal(t, dr, length.Command.DateRange)

	dest := preview.Commands[1]
	assert.Equal(t, "MLE", dest.Command.Qualifier)
	assert.Equal(t, models.PoolHighest, dest.Command.TripPool)
	assert.Equal(t, []string{"7024"}, tripNumbers(dest.MatchedTrips))

	early := preview.Commands[2]
	assert.Equal(t, models.CommandAvoid, early.Command.Kind)
	assert.Empty(t, early.Command.TripPool)
	assert.Equal(t, "< 07:00", early.Command.Qualifier)
	assert.Equal(t, []string{"7024"}, tripNumbers(early.MatchedTrips))
}

func TestBuildGroupCommands_FirstErrorAborts(t *testing.T) {
	group := models.BidGroup{
		ID: "broken",
		Commands: []models.BidCommandInput{
			models.DestinationInput{
				CommandInputBase: models.CommandInputBase{Verb: models.CommandAward, Pool: models.PoolHigh},
				Destination:      "MLE",
			},
			models.TripLengthInput{
				CommandInputBase: models.CommandInputBase{Verb: models.CommandAward},
				Operator:         models.LengthBetween,
				MinDays:          intPtr(3),
			},
		},
	}

	cmds, err := BuildGroupCommands(group, nil)
	require.ErrorIs(t, err, derr.ErrInvalidCommandInput)
	assert.Contains(t, err.Error(), "group broken command 2")
	assert.Nil(t, cmds)

	_, err = PreviewGroup(group, catalog(), nil)
	require.ErrorIs(t, err, derr.ErrInvalidCommandInput)
}

func TestBuildBidGroups_Defaults(t *testing.T) {
	groups := BuildBidGroups(DefaultPreferences777())
	require.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "prefs-group-1", group.ID)
	assert.Equal(t, 1, group.Rank)
	require.Len(t, group.Commands, 2)

	length, ok := group.Commands[0].(models.TripLengthInput)
	require.True(t, ok)
	assert.Equal(t, models.LengthBetween, length.Operator)
	assert.Equal(t, 3, *length.MinDays)
	assert.Equal(t, 4, *length.MaxDays)

	early, ok := group.Commands[1].(models.ReportTimeInput)
	require.True(t, ok)
	assert.Equal(t, "07:30", early.Time)
	assert.Equal(t, models.CommandAvoid, early.Verb)
}

func TestBuildBidGroups_Variants(t *testing.T) {
	prefs := Preferences{
		TripLength: MostlyLong,
		PreferredDestinations: []DestinationPreference{
			{Code: "MLE", Priority: models.PoolHighest, MaxPerMonth: 2},
			{Code: "JFK", Priority: models.PoolHigh},
		},
		ReportTime: ReportTimePreference{AvoidVeryEarly: false, EarliestPreferredReport: "07:00"},
	}

	groups := BuildBidGroups(prefs)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Commands, 3)

	length := groups[0].Commands[0].(models.TripLengthInput)
	assert.Equal(t, models.PoolHigher, length.Pool)
	assert.Equal(t, 4, *length.Days)

	mle := groups[0].Commands[1].(models.DestinationInput)
	assert.Equal(t, "MLE", mle.Destination)
	assert.Equal(t, 2, mle.Limit)

	preview, err := PreviewGroup(groups[0], catalog(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"7024", "7202"}, tripNumbers(preview.Commands[0].MatchedTrips))
	assert.Equal(t, []string{"7174"}, tripNumbers(preview.Commands[2].MatchedTrips))
}

func TestBuildBidGroups_NoTripLength(t *testing.T) {
	groups := BuildBidGroups(Preferences{TripLength: "whatever"})
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Commands)

	short := BuildBidGroups(Preferences{TripLength: MostlyShort})
	in := short[0].Commands[0].(models.TripLengthInput)
	assert.Equal(t, 3, *in.Days)
	assert.Equal(t, 4, in.Limit)
}
