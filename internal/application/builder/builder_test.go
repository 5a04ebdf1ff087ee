package builder

import (
	"testing"

	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func award(pool models.TripPool) models.CommandInputBase {
	return models.CommandInputBase{Verb: models.CommandAward, Pool: pool}
}

func TestBuild_Destination(t *testing.T) {
	cmd, err := Build(models.DestinationInput{
		CommandInputBase: models.CommandInputBase{Verb: models.CommandAward, Pool: models.PoolHighest, Limit: 2, Note: "MLE first"},
		Destination:      "  mle ",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, models.TripPropertyCommand{
		Kind:      models.CommandAward,
		Property:  models.PropertyDestination,
		Qualifier: "MLE",
		TripPool:  models.PoolHighest,
		Limit:     2,
		Note:      "MLE first",
	}, cmd)
}

func TestBuild_DestinationRequiresCode(t *testing.T) {
	_, err := Build(models.DestinationInput{CommandInputBase: award(models.PoolHigh), Destination: "   "}, nil)
	require.ErrorIs(t, err, derr.ErrInvalidCommandInput)
}

func TestBuild_AvoidNeverCarriesPool(t *testing.T) {
	inputs := []models.BidCommandInput{
		models.DestinationInput{
			CommandInputBase: models.CommandInputBase{Verb: models.CommandAvoid, Pool: models.PoolHigh},
			Destination:      "BOM",
		},
		models.TripLengthInput{
			CommandInputBase: models.CommandInputBase{Verb: models.CommandAvoid, Pool: models.PoolHighest},
			Operator:         models.LengthEqual,
			Days:             intPtr(2),
		},
		models.ReportTimeInput{
			CommandInputBase: models.CommandInputBase{Verb: models.CommandAvoid, Pool: models.PoolLow},
			Operator:         models.TimeEarlierThan,
			Time:             "07:30",
		},
	}

	for _, in := range inputs {
		cmd, err := Build(in, nil)
		require.NoError(t, err)
		assert.Empty(t, cmd.TripPool, "kind %s", in.Kind())
	}
}

func TestBuild_TripLengthQualifiers(t *testing.T) {
	tests := []struct {
		name string
		in   models.TripLengthInput
		want string
	}{
		{name: "equal", in: models.TripLengthInput{Operator: models.LengthEqual, Days: intPtr(4)}, want: "4D"},
		{name: "at least", in: models.TripLengthInput{Operator: models.LengthAtLeast, Days: intPtr(4)}, want: ">= 4D"},
		{name: "at most", in: models.TripLengthInput{Operator: models.LengthAtMost, Days: intPtr(3)}, want: "<= 3D"},
		{name: "between", in: models.TripLengthInput{Operator: models.LengthBetween, MinDays: intPtr(4), MaxDays: intPtr(5)}, want: "4-5D"},
		{name: "zero days is a value", in: models.TripLengthInput{Operator: models.LengthEqual, Days: intPtr(0)}, want: "0D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.CommandInputBase = award(models.PoolHigher)
			cmd, err := Build(tt.in, nil)
			require.NoError(t, err)
			assert.Equal(t, models.PropertyTripLength, cmd.Property)
			assert.Equal(t, tt.want, cmd.Qualifier)
			assert.Equal(t, models.PoolHigher, cmd.TripPool)
		})
	}
}

func TestBuild_TripLengthMissingFields(t *testing.T) {
	_, err := Build(models.TripLengthInput{CommandInputBase: award(""), Operator: models.LengthEqual}, nil)
	require.ErrorIs(t, err, derr.ErrInvalidCommandInput)
	assert.Contains(t, err.Error(), "EQUAL")
	assert.Contains(t, err.Error(), "days")

	_, err = Build(models.TripLengthInput{CommandInputBase: award(""), Operator: models.LengthBetween, MinDays: intPtr(3)}, nil)
	require.ErrorIs(t, err, derr.ErrInvalidCommandInput)
	assert.Contains(t, err.Error(), "BETWEEN")
	assert.Contains(t, err.Error(), "maxDays")

	_, err = Build(models.TripLengthInput{CommandInputBase: award(""), Operator: "ABOUT", Days: intPtr(3)}, nil)
	require.ErrorIs(t, err, derr.ErrInvalidCommandInput)
}

func TestBuild_ReportTime(t *testing.T) {
	ops := map[models.TimeOperator]string{
		models.TimeEarlierThan:    "< 07:30",
		models.TimeNotEarlierThan: ">= 07:30",
		models.TimeLaterThan:      "> 07:30",
		models.TimeNotLaterThan:   "<= 07:30",
	}

	for op, want := range ops {
		cmd, err := Build(models.ReportTimeInput{
			CommandInputBase: models.CommandInputBase{Verb: models.CommandAvoid},
			Operator:         op,
			Time:             " 07:30 ",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, models.PropertyTripReportTime, cmd.Property)
		assert.Equal(t, want, cmd.Qualifier)
	}
}

func TestBuild_ReportTimeValidation(t *testing.T) {
	_, err := Build(models.ReportTimeInput{
		CommandInputBase: models.CommandInputBase{Verb: models.CommandAvoid},
		Operator:         models.TimeEarlierThan,
	}, nil)
	require.ErrorIs(t, err, derr.ErrInvalidCommandInput)

	_, err = Build(models.ReportTimeInput{
		CommandInputBase: models.CommandInputBase{Verb: models.CommandAvoid},
		Operator:         "AROUND",
		Time:             "07:30",
	}, nil)
	require.ErrorIs(t, err, derr.ErrInvalidCommandInput)
}

func TestBuild_CopiesDateRange(t *testing.T) {
	dr := &models.DateRange{From: "2026-01-01", To: "2026-01-31"}
	cmd, err := Build(models.DestinationInput{CommandInputBase: award(models.PoolHigh), Destination: "DXB"}, dr)
	require.NoError(t, err)
	assert.Equal(t, dr, cmd.DateRange)
}

func TestBuild_NilInput(t *testing.T) {
	_, err := Build(nil, nil)
	require.ErrorIs(t, err, derr.ErrInvalidCommandInput)
}

func TestBuild_IsDeterministic(t *testing.T) {
	in := models.TripLengthInput{CommandInputBase: award(models.PoolHigh), Operator: models.LengthAtLeast, Days: intPtr(4)}

	first, err := Build(in, nil)
	require.NoError(t, err)
	second, err := Build(in, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuild_UnsupportedVariant(t *testing.T) {
	_, err := Build(&models.DestinationInput{CommandInputBase: award(models.PoolHigh), Destination: "MLE"}, nil)
	require.ErrorIs(t, err, derr.ErrUnsupportedCommandKind)
}
