package render

import (
	"fmt"
	"strings"

	"github.com/ozzus/nextbid/internal/domain/models"
)

var propertyAbbreviations = map[models.TripProperty]string{
	models.PropertyDestination:       "DEST",
	models.PropertyTripNumber:        "TRIP",
	models.PropertyTripLength:        "TLEN",
	models.PropertyCreditTime:        "CREDIT",
	models.PropertyBlockTime:         "BLOCK",
	models.PropertyLayoverWithLength: "LAYOVER",
	models.PropertyOnDutyWithin:      "ONDUTY",
	models.PropertyTripStartTime:     "TRIPSTART",
	models.PropertyTripReportTime:    "REPORT",
}

// Render produces the display line
// "KIND ABBREV[ QUALIFIER][ FROM-TO][ [POOL]][ MAX N]". The line is for
// display and export only and is never parsed back.
func Render(cmd models.TripPropertyCommand) string {
	parts := make([]string, 0, 6)
	parts = append(parts, string(cmd.Kind), propertyText(cmd))

	if !cmd.DateRange.IsZero() {
		parts = append(parts, cmd.DateRange.From+"-"+cmd.DateRange.To)
	}

	if cmd.Kind == models.CommandAward && cmd.TripPool != "" {
		parts = append(parts, "["+string(cmd.TripPool)+"]")
	}

	if cmd.Limit > 0 {
		parts = append(parts, fmt.Sprintf("MAX %d", cmd.Limit))
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

func propertyText(cmd models.TripPropertyCommand) string {
	abbrev, ok := propertyAbbreviations[cmd.Property]
	if !ok {
		abbrev = string(cmd.Property)
	}
	if cmd.Qualifier == "" {
		return abbrev
	}
	return abbrev + " " + cmd.Qualifier
}

// RenderAll renders every command in order.
func RenderAll(cmds []models.TripPropertyCommand) []string {
	lines := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		lines = append(lines, Render(cmd))
	}
	return lines
}
