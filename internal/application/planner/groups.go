// Package planner groups UI-level commands into bid groups and previews them
// against a trip catalog.
package planner

import (
	"fmt"

	"github.com/ozzus/nextbid/internal/application/builder"
	"github.com/ozzus/nextbid/internal/application/matcher"
	"github.com/ozzus/nextbid/internal/application/render"
	"github.com/ozzus/nextbid/internal/domain/models"
)

// BuildGroupCommands builds every input of the group in order. The first
// invalid input aborts the whole group.
func BuildGroupCommands(group models.BidGroup, dateRange *models.DateRange) ([]models.TripPropertyCommand, error) {
	cmds := make([]models.TripPropertyCommand, 0, len(group.Commands))
	for i, input := range group.Commands {
		cmd, err := builder.Build(input, dateRange)
		if err != nil {
			return nil, fmt.Errorf("group %s command %d: %w", group.ID, i+1, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// PreviewGroup shows, for each input of the group, its engine command and the
// trips it affects.
func PreviewGroup(group models.BidGroup, trips []models.Trip, dateRange *models.DateRange) (models.BidGroupPreview, error) {
	cmds, err := BuildGroupCommands(group, dateRange)
	if err != nil {
		return models.BidGroupPreview{}, err
	}

	previews := make([]models.CommandPreview, 0, len(cmds))
	for i, cmd := range cmds {
		previews = append(previews, models.CommandPreview{
			Input:        group.Commands[i],
			Command:      cmd,
			Rendered:     render.Render(cmd),
			MatchedTrips: matcher.MatchTrips(cmd, trips),
		})
	}

	return models.BidGroupPreview{Group: group, Commands: previews}, nil
}

func intPtr(v int) *int { return &v }

// Demo777IdealGroup is a sample "ideal month" group for a 777 pilot.
func Demo777IdealGroup() models.BidGroup {
	return models.BidGroup{
		ID:   "demo-777-ideal",
		Name: "Group 1 – Ideal 777 month",
		Rank: 1,
		Commands: []models.BidCommandInput{
			models.TripLengthInput{
				CommandInputBase: models.CommandInputBase{
					Verb:  models.CommandAward,
					Pool:  models.PoolHigher,
					Limit: 3,
					Note:  "Prefer 4-day trips (up to 3) into H+",
				},
				Operator: models.LengthEqual,
				Days:     intPtr(4),
			},
			models.DestinationInput{
				CommandInputBase: models.CommandInputBase{
					Verb:  models.CommandAward,
					Pool:  models.PoolHighest,
					Limit: 2,
					Note:  "Top priority MLE trips into H++",
				},
				Destination: "MLE",
			},
			models.ReportTimeInput{
				CommandInputBase: models.CommandInputBase{
					Verb: models.CommandAvoid,
					Note: "Avoid ultra-early reports before 07:00",
				},
				Operator: models.TimeEarlierThan,
				Time:     "07:00",
			},
		},
	}
}
