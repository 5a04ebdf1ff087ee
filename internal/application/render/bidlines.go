package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ozzus/nextbid/internal/domain/models"
)

// strengthFor assigns the default bid strength by position: the first line is
// S5, the next two S4, everything after S3.
func strengthFor(index int) int {
	switch {
	case index == 0:
		return 5
	case index <= 2:
		return 4
	default:
		return 3
	}
}

// BidLines numbers commands from T01 in the given order.
func BidLines(cmds []models.TripPropertyCommand) []models.BidLine {
	lines := make([]models.BidLine, 0, len(cmds))
	for i, cmd := range cmds {
		lines = append(lines, models.BidLine{
			LineNumber: i + 1,
			Strength:   strengthFor(i),
			Command:    cmd,
			Text:       Render(cmd),
		})
	}
	return lines
}

// ExportBlock formats bid lines as the text block pasted into the bidding
// system, one "T01 S5 <command>" per line.
func ExportBlock(lines []models.BidLine) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, fmt.Sprintf("T%02d S%d %s", line.LineNumber, line.Strength, line.Text))
	}
	return strings.Join(out, "\n")
}

var lengthSymbols = map[models.TripLengthOperator]string{
	models.LengthEqual:   "=",
	models.LengthAtLeast: ">=",
	models.LengthAtMost:  "<=",
}

var timeSymbols = map[models.TimeOperator]string{
	models.TimeEarlierThan:    "<",
	models.TimeNotEarlierThan: ">=",
	models.TimeLaterThan:      ">",
	models.TimeNotLaterThan:   "<=",
}

// GroupLine formats a UI-level input as a group-prefixed trip property line,
// e.g. "G01 AWARD DESTINATION MLE POOL H++ LIMIT 2". A nil input yields "".
func GroupLine(input models.BidCommandInput, groupNumber int) string {
	if input == nil {
		return ""
	}

	base := input.Common()
	parts := []string{fmt.Sprintf("G%02d", groupNumber), string(base.Verb)}

	switch in := input.(type) {
	case models.DestinationInput:
		parts = append(parts, "DESTINATION", strings.ToUpper(strings.TrimSpace(in.Destination)))
	case models.TripLengthInput:
		parts = append(parts, "TRIP_LENGTH_DAYS")
		if in.Operator == models.LengthBetween {
			if in.MinDays != nil && in.MaxDays != nil {
				parts = append(parts, "BETWEEN", strconv.Itoa(*in.MinDays), strconv.Itoa(*in.MaxDays))
			}
		} else if in.Days != nil {
			symbol, ok := lengthSymbols[in.Operator]
			if !ok {
				symbol = "="
			}
			parts = append(parts, symbol, strconv.Itoa(*in.Days))
		}
	case models.ReportTimeInput:
		symbol, ok := timeSymbols[in.Operator]
		if !ok {
			symbol = "<"
		}
		parts = append(parts, "REPORT_TIME", symbol, strings.TrimSpace(in.Time))
	default:
		parts = append(parts, string(input.Kind()))
	}

	if base.Verb == models.CommandAward && base.Pool != "" {
		parts = append(parts, "POOL", string(base.Pool))
	}
	if base.Limit > 0 {
		parts = append(parts, "LIMIT", strconv.Itoa(base.Limit))
	}

	return strings.Join(parts, " ")
}
