// Package wire holds the JSON shapes shared by the HTTP and gRPC surfaces.
package wire

import (
	"fmt"
	"strings"

	"github.com/ozzus/nextbid/internal/application/planner"
	"github.com/ozzus/nextbid/internal/application/render"
	derr "github.com/ozzus/nextbid/internal/domain/errors"
	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/ozzus/nextbid/internal/domain/ports"
)

// CommandInput is the flat, kind-tagged form of models.BidCommandInput.
type CommandInput struct {
	Kind        models.BidCommandKind `json:"kind"`
	Verb        models.CommandKind    `json:"verb"`
	Pool        models.TripPool       `json:"pool,omitempty"`
	Limit       int                   `json:"limit,omitempty"`
	Note        string                `json:"note,omitempty"`
	Destination string                `json:"destination,omitempty"`
	Operator    string                `json:"operator,omitempty"`
	Days        *int                  `json:"days,omitempty"`
	MinDays     *int                  `json:"min_days,omitempty"`
	MaxDays     *int                  `json:"max_days,omitempty"`
	Time        string                `json:"time,omitempty"`
}

func (in CommandInput) ToModel() (models.BidCommandInput, error) {
	verb := models.CommandKind(strings.ToUpper(strings.TrimSpace(string(in.Verb))))
	if verb != models.CommandAward && verb != models.CommandAvoid {
		return nil, fmt.Errorf("%w: verb must be AWARD or AVOID, got %q", derr.ErrInvalidCommandInput, in.Verb)
	}
	if in.Pool != "" && !in.Pool.Valid() {
		return nil, fmt.Errorf("%w: unknown trip pool %q", derr.ErrInvalidCommandInput, in.Pool)
	}
	if in.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", derr.ErrInvalidCommandInput)
	}

	base := models.CommandInputBase{Verb: verb, Pool: in.Pool, Limit: in.Limit, Note: in.Note}
	operator := strings.ToUpper(strings.TrimSpace(in.Operator))

	switch models.BidCommandKind(strings.ToUpper(strings.TrimSpace(string(in.Kind)))) {
	case models.InputDestination:
		return models.DestinationInput{CommandInputBase: base, Destination: in.Destination}, nil
	case models.InputTripLengthDays:
		return models.TripLengthInput{
			CommandInputBase: base,
			Operator:         models.TripLengthOperator(operator),
			Days:             in.Days,
			MinDays:          in.MinDays,
			MaxDays:          in.MaxDays,
		}, nil
	case models.InputTripReportTime:
		return models.ReportTimeInput{
			CommandInputBase: base,
			Operator:         models.TimeOperator(operator),
			Time:             in.Time,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", derr.ErrUnsupportedCommandKind, in.Kind)
	}
}

func FromModel(input models.BidCommandInput) CommandInput {
	if input == nil {
		return CommandInput{}
	}

	base := input.Common()
	out := CommandInput{
		Kind:  input.Kind(),
		Verb:  base.Verb,
		Pool:  base.Pool,
		Limit: base.Limit,
		Note:  base.Note,
	}

	switch in := input.(type) {
	case models.DestinationInput:
		out.Destination = in.Destination
	case models.TripLengthInput:
		out.Operator = string(in.Operator)
		out.Days, out.MinDays, out.MaxDays = in.Days, in.MinDays, in.MaxDays
	case models.ReportTimeInput:
		out.Operator = string(in.Operator)
		out.Time = in.Time
	}

	return out
}

type BuildCommandRequest struct {
	Input     CommandInput      `json:"input"`
	DateRange *models.DateRange `json:"date_range,omitempty"`
}

type SimulateCommandRequest struct {
	Input     CommandInput      `json:"input"`
	DateRange *models.DateRange `json:"date_range,omitempty"`
	Period    string            `json:"period,omitempty"`
}

type MatchCommandRequest struct {
	Command models.TripPropertyCommand `json:"command"`
	Period  string                     `json:"period,omitempty"`
}

type CommandResponse = ports.CommandResult

type RenderRequest struct {
	Commands []models.TripPropertyCommand `json:"commands"`
}

type RenderResponse struct {
	Lines  []models.BidLine `json:"lines"`
	Export string           `json:"export"`
}

func NewRenderResponse(cmds []models.TripPropertyCommand) RenderResponse {
	lines := render.BidLines(cmds)
	return RenderResponse{Lines: lines, Export: render.ExportBlock(lines)}
}

type CompileBidGroupRequest struct {
	ProfileID string `json:"profile_id"`
	MaxLines  int    `json:"max_lines,omitempty"`
}

type PreviewBidGroupRequest struct {
	ProfileID string `json:"profile_id"`
	Period    string `json:"period,omitempty"`
	MaxLines  int    `json:"max_lines,omitempty"`
}

type PreviewPreferencesRequest struct {
	Preferences *planner.Preferences `json:"preferences,omitempty"`
	Period      string               `json:"period,omitempty"`
	DateRange   *models.DateRange    `json:"date_range,omitempty"`
}

// Prefs falls back to the 777 defaults when the request omits preferences.
func (r PreviewPreferencesRequest) Prefs() planner.Preferences {
	if r.Preferences == nil {
		return planner.DefaultPreferences777()
	}
	return *r.Preferences
}

type GroupCommand struct {
	Input        CommandInput               `json:"input"`
	GroupLine    string                     `json:"group_line"`
	Command      models.TripPropertyCommand `json:"command"`
	Rendered     string                     `json:"rendered"`
	MatchedTrips []models.Trip              `json:"matched_trips"`
}

type GroupPreview struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Rank            int            `json:"rank"`
	IsFinalFallback bool           `json:"is_final_fallback"`
	Note            string         `json:"note,omitempty"`
	Commands        []GroupCommand `json:"commands"`
}

func NewGroupPreviews(previews []models.BidGroupPreview) []GroupPreview {
	out := make([]GroupPreview, 0, len(previews))
	for _, p := range previews {
		cmds := make([]GroupCommand, 0, len(p.Commands))
		for _, c := range p.Commands {
			cmds = append(cmds, GroupCommand{
				Input:        FromModel(c.Input),
				GroupLine:    render.GroupLine(c.Input, p.Group.Rank),
				Command:      c.Command,
				Rendered:     c.Rendered,
				MatchedTrips: c.MatchedTrips,
			})
		}
		out = append(out, GroupPreview{
			ID:              p.Group.ID,
			Name:            p.Group.Name,
			Rank:            p.Group.Rank,
			IsFinalFallback: p.Group.IsFinalFallback,
			Note:            p.Group.Note,
			Commands:        cmds,
		})
	}
	return out
}

type PreviewPreferencesResponse struct {
	Groups []GroupPreview `json:"groups"`
}

type DefinitionsResponse struct {
	Definitions []models.CommandDefinition `json:"definitions"`
}
