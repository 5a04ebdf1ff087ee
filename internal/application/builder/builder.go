package builder

import (
	"fmt"
	"strings"

	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/ozzus/nextbid/internal/domain/qualifier"
)

var reportTimeComparators = map[models.TimeOperator]qualifier.Comparator{
	models.TimeEarlierThan:    qualifier.Less,
	models.TimeNotEarlierThan: qualifier.GreaterOrEqual,
	models.TimeLaterThan:      qualifier.Greater,
	models.TimeNotLaterThan:   qualifier.LessOrEqual,
}

// Build converts a UI-level input into the canonical command. It fails when
// the fields required by the chosen operator are missing.
func Build(input models.BidCommandInput, dateRange *models.DateRange) (models.TripPropertyCommand, error) {
	if input == nil {
		return models.TripPropertyCommand{}, fmt.Errorf("%w: input is required", derr.ErrInvalidCommandInput)
	}

	var (
		property models.TripProperty
		term     fmt.Stringer
		err      error
	)

	switch in := input.(type) {
	case models.DestinationInput:
		property = models.PropertyDestination
		term, err = destinationTerm(in)
	case models.TripLengthInput:
		property = models.PropertyTripLength
		term, err = tripLengthTerm(in)
	case models.ReportTimeInput:
		property = models.PropertyTripReportTime
		term, err = reportTimeTerm(in)
	default:
		return models.TripPropertyCommand{}, fmt.Errorf("%w: %T", derr.ErrUnsupportedCommandKind, input)
	}
	if err != nil {
		return models.TripPropertyCommand{}, err
	}

	base := input.Common()
	return models.TripPropertyCommand{
		Kind:      base.Verb,
		Property:  property,
		Qualifier: term.String(),
		DateRange: dateRange,
		TripPool:  resolveTripPool(base.Verb, base.Pool),
		Limit:     base.Limit,
		Note:      base.Note,
	}, nil
}

// resolveTripPool is the only place the AWARD-only pool rule is applied.
func resolveTripPool(verb models.CommandKind, pool models.TripPool) models.TripPool {
	if verb == models.CommandAward {
		return pool
	}
	return ""
}

func destinationTerm(in models.DestinationInput) (fmt.Stringer, error) {
	term := qualifier.Destination(in.Destination)
	if term.Code == "" {
		return nil, fmt.Errorf("%w: DESTINATION requires 'destination'", derr.ErrInvalidCommandInput)
	}
	return term, nil
}

func tripLengthTerm(in models.TripLengthInput) (fmt.Stringer, error) {
	switch in.Operator {
	case models.LengthEqual:
		if in.Days == nil {
			return nil, missingDays(in.Operator)
		}
		return qualifier.ExactDays(*in.Days), nil
	case models.LengthAtLeast:
		if in.Days == nil {
			return nil, missingDays(in.Operator)
		}
		return qualifier.AtLeastDays(*in.Days), nil
	case models.LengthAtMost:
		if in.Days == nil {
			return nil, missingDays(in.Operator)
		}
		return qualifier.AtMostDays(*in.Days), nil
	case models.LengthBetween:
		if in.MinDays == nil || in.MaxDays == nil {
			return nil, fmt.Errorf("%w: TRIP_LENGTH_DAYS (BETWEEN) requires 'minDays' and 'maxDays'", derr.ErrInvalidCommandInput)
		}
		return qualifier.BetweenDays(*in.MinDays, *in.MaxDays), nil
	default:
		return nil, fmt.Errorf("%w: unknown trip length operator %q", derr.ErrInvalidCommandInput, in.Operator)
	}
}

func missingDays(op models.TripLengthOperator) error {
	return fmt.Errorf("%w: TRIP_LENGTH_DAYS (%s) requires 'days'", derr.ErrInvalidCommandInput, op)
}

func reportTimeTerm(in models.ReportTimeInput) (fmt.Stringer, error) {
	comparator, ok := reportTimeComparators[in.Operator]
	if !ok {
		return nil, fmt.Errorf("%w: unknown time operator %q", derr.ErrInvalidCommandInput, in.Operator)
	}

	clock := strings.TrimSpace(in.Time)
	if clock == "" {
		return nil, fmt.Errorf("%w: TRIP_REPORT_TIME requires 'time'", derr.ErrInvalidCommandInput)
	}

	return qualifier.TimeTerm{Comparator: comparator, Clock: clock}, nil
}
