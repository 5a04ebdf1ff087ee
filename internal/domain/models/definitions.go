package models

type CommandDefinition struct {
	Kind          BidCommandKind `json:"kind"`
	Label         string         `json:"label"`
	SupportsAward bool           `json:"supports_award"`
	SupportsAvoid bool           `json:"supports_avoid"`
	NeedsTripPool bool           `json:"needs_trip_pool"`
	SupportsLimit bool           `json:"supports_limit"`
}

// CommandDefinitions returns the command kinds the builder accepts, in the
// order they are offered to pilots.
func CommandDefinitions() []CommandDefinition {
	return []CommandDefinition{
		{
			Kind:          InputDestination,
			Label:         "Destination / layover",
			SupportsAward: true,
			SupportsAvoid: true,
			NeedsTripPool: true,
			SupportsLimit: true,
		},
		{
			Kind:          InputTripLengthDays,
			Label:         "Trip length (days)",
			SupportsAward: true,
			SupportsAvoid: true,
			NeedsTripPool: true,
			SupportsLimit: true,
		},
		{
			Kind:          InputTripReportTime,
			Label:         "Trip report time (local)",
			SupportsAward: true,
			SupportsAvoid: true,
			NeedsTripPool: true,
			SupportsLimit: true,
		},
	}
}
