package models

type CommandKind string

const (
	CommandAward CommandKind = "AWARD"
	CommandAvoid CommandKind = "AVOID"
)

type TripProperty string

const (
	PropertyDestination       TripProperty = "DESTINATION"
	PropertyTripNumber        TripProperty = "TRIP_NUMBER"
	PropertyTripLength        TripProperty = "TRIP_LENGTH"
	PropertyCreditTime        TripProperty = "CREDIT_TIME"
	PropertyBlockTime         TripProperty = "BLOCK_TIME"
	PropertyLayoverWithLength TripProperty = "LAYOVER_WITH_LENGTH"
	PropertyOnDutyWithin      TripProperty = "ON_DUTY_WITHIN"
	PropertyTripStartTime     TripProperty = "TRIP_START_TIME"
	PropertyTripReportTime    TripProperty = "TRIP_REPORT_TIME"
)

// TripPool is the priority bucket the scheduling system uses when honouring
// AWARD commands, from L-- (lowest) to H++ (highest).
type TripPool string

const (
	PoolLowest  TripPool = "L--"
	PoolLower   TripPool = "L-"
	PoolLow     TripPool = "L"
	PoolNeutral TripPool = "N"
	PoolHigh    TripPool = "H"
	PoolHigher  TripPool = "H+"
	PoolHighest TripPool = "H++"
)

func (p TripPool) Valid() bool {
	switch p {
	case PoolLowest, PoolLower, PoolLow, PoolNeutral, PoolHigh, PoolHigher, PoolHighest:
		return true
	default:
		return false
	}
}

// DateRange holds ISO dates ("2026-01-01"). Either side may be empty.
type DateRange struct {
	From string `json:"from,omitempty" yaml:"from,omitempty"`
	To   string `json:"to,omitempty" yaml:"to,omitempty"`
}

func (r *DateRange) IsZero() bool {
	return r == nil || (r.From == "" && r.To == "")
}

// TripPropertyCommand is a single AWARD/AVOID directive against one trip
// property. TripPool is only ever set for AWARD commands; Limit of zero means
// no limit.
type TripPropertyCommand struct {
	Kind      CommandKind  `json:"kind"`
	Property  TripProperty `json:"property"`
	Qualifier string       `json:"qualifier,omitempty"`
	DateRange *DateRange   `json:"date_range,omitempty"`
	TripPool  TripPool     `json:"trip_pool,omitempty"`
	Limit     int          `json:"limit,omitempty"`
	Note      string       `json:"note,omitempty"`
}
