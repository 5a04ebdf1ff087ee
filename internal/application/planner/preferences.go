package planner

import (
	"strings"

	"github.com/ozzus/nextbid/internal/domain/models"
)

type TripLengthPreference string

const (
	MostlyShort TripLengthPreference = "mostly_short"
	Balanced    TripLengthPreference = "balanced"
	MostlyLong  TripLengthPreference = "mostly_long"
)

// DestinationPreference awards Code into the Priority pool, at most
// MaxPerMonth times when set.
type DestinationPreference struct {
	Code        string          `json:"code" yaml:"code"`
	Priority    models.TripPool `json:"priority" yaml:"priority"`
	MaxPerMonth int             `json:"max_per_month,omitempty" yaml:"max_per_month"`
}

type ReportTimePreference struct {
	AvoidVeryEarly          bool   `json:"avoid_very_early" yaml:"avoid_very_early"`
	EarliestPreferredReport string `json:"earliest_preferred_report,omitempty" yaml:"earliest_preferred_report"`
}

// Preferences is what a pilot states in plain language before it is turned
// into bid groups.
type Preferences struct {
	TripLength            TripLengthPreference    `json:"trip_length" yaml:"trip_length"`
	PreferredDestinations []DestinationPreference `json:"preferred_destinations" yaml:"preferred_destinations"`
	ReportTime            ReportTimePreference    `json:"report_time" yaml:"report_time"`
}

func DefaultPreferences777() Preferences {
	return Preferences{
		TripLength: Balanced,
		ReportTime: ReportTimePreference{
			AvoidVeryEarly:          true,
			EarliestPreferredReport: "07:30",
		},
	}
}

// BuildBidGroups turns preferences into the "ideal month" group: trip length
// first, then one AWARD per destination, then the early-report avoid.
func BuildBidGroups(prefs Preferences) []models.BidGroup {
	cmds := make([]models.BidCommandInput, 0, len(prefs.PreferredDestinations)+2)

	if in, ok := tripLengthInput(prefs.TripLength); ok {
		cmds = append(cmds, in)
	}

	for _, dest := range prefs.PreferredDestinations {
		cmds = append(cmds, models.DestinationInput{
			CommandInputBase: models.CommandInputBase{
				Verb:  models.CommandAward,
				Pool:  dest.Priority,
				Limit: dest.MaxPerMonth,
				Note:  "Prefer " + dest.Code + " into " + string(dest.Priority),
			},
			Destination: dest.Code,
		})
	}

	if in, ok := reportTimeInput(prefs.ReportTime); ok {
		cmds = append(cmds, in)
	}

	return []models.BidGroup{{
		ID:       "prefs-group-1",
		Name:     "Group 1 – Ideal month (from preferences)",
		Rank:     1,
		Commands: cmds,
	}}
}

func tripLengthInput(pref TripLengthPreference) (models.TripLengthInput, bool) {
	switch pref {
	case MostlyShort:
		return models.TripLengthInput{
			CommandInputBase: models.CommandInputBase{
				Verb:  models.CommandAward,
				Pool:  models.PoolHigh,
				Limit: 4,
				Note:  "Prefer mostly 3-day trips (up to 4)",
			},
			Operator: models.LengthEqual,
			Days:     intPtr(3),
		}, true
	case Balanced:
		return models.TripLengthInput{
			CommandInputBase: models.CommandInputBase{
				Verb: models.CommandAward,
				Pool: models.PoolNeutral,
				Note: "Balanced mix of 3- and 4-day trips",
			},
			Operator: models.LengthBetween,
			MinDays:  intPtr(3),
			MaxDays:  intPtr(4),
		}, true
	case MostlyLong:
		return models.TripLengthInput{
			CommandInputBase: models.CommandInputBase{
				Verb:  models.CommandAward,
				Pool:  models.PoolHigher,
				Limit: 4,
				Note:  "Prefer mostly 4-day trips (up to 4)",
			},
			Operator: models.LengthEqual,
			Days:     intPtr(4),
		}, true
	default:
		return models.TripLengthInput{}, false
	}
}

func reportTimeInput(pref ReportTimePreference) (models.ReportTimeInput, bool) {
	t := strings.TrimSpace(pref.EarliestPreferredReport)
	if !pref.AvoidVeryEarly || t == "" {
		return models.ReportTimeInput{}, false
	}

	return models.ReportTimeInput{
		CommandInputBase: models.CommandInputBase{
			Verb: models.CommandAvoid,
			Note: "Avoid reports earlier than " + t,
		},
		Operator: models.TimeEarlierThan,
		Time:     t,
	}, true
}
