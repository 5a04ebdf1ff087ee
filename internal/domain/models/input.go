package models

// BidCommandKind is the UI-level command family a pilot picks.
type BidCommandKind string

const (
	InputDestination    BidCommandKind = "DESTINATION"
	InputTripLengthDays BidCommandKind = "TRIP_LENGTH_DAYS"
	InputTripReportTime BidCommandKind = "TRIP_REPORT_TIME"
)

type TripLengthOperator string

const (
	LengthEqual   TripLengthOperator = "EQUAL"
	LengthAtLeast TripLengthOperator = "AT_LEAST"
	LengthAtMost  TripLengthOperator = "AT_MOST"
	LengthBetween TripLengthOperator = "BETWEEN"
)

type TimeOperator string

const (
	TimeEarlierThan    TimeOperator = "EARLIER_THAN"
	TimeNotEarlierThan TimeOperator = "NOT_EARLIER_THAN"
	TimeLaterThan      TimeOperator = "LATER_THAN"
	TimeNotLaterThan   TimeOperator = "NOT_LATER_THAN"
)

// BidCommandInput is the closed set of UI-level command shapes:
// DestinationInput, TripLengthInput and ReportTimeInput.
type BidCommandInput interface {
	Kind() BidCommandKind
	Common() CommandInputBase
	sealed()
}

// CommandInputBase holds the fields shared by every input variant. Pool is
// only honoured for AWARD.
type CommandInputBase struct {
	Verb  CommandKind `json:"verb"`
	Pool  TripPool    `json:"pool,omitempty"`
	Limit int         `json:"limit,omitempty"`
	Note  string      `json:"note,omitempty"`
}

type DestinationInput struct {
	CommandInputBase
	Destination string `json:"destination"`
}

// TripLengthInput uses Days for EQUAL, AT_LEAST and AT_MOST and
// MinDays/MaxDays for BETWEEN. Nil means the value was not supplied.
type TripLengthInput struct {
	CommandInputBase
	Operator TripLengthOperator `json:"operator"`
	Days     *int               `json:"days,omitempty"`
	MinDays  *int               `json:"min_days,omitempty"`
	MaxDays  *int               `json:"max_days,omitempty"`
}

// ReportTimeInput compares the local report time against Time ("HH:MM").
type ReportTimeInput struct {
	CommandInputBase
	Operator TimeOperator `json:"operator"`
	Time     string       `json:"time"`
}

func (DestinationInput) Kind() BidCommandKind { return InputDestination }
func (TripLengthInput) Kind() BidCommandKind  { return InputTripLengthDays }
func (ReportTimeInput) Kind() BidCommandKind  { return InputTripReportTime }

func (in DestinationInput) Common() CommandInputBase { return in.CommandInputBase }
func (in TripLengthInput) Common() CommandInputBase  { return in.CommandInputBase }
func (in ReportTimeInput) Common() CommandInputBase  { return in.CommandInputBase }

func (DestinationInput) sealed() {}
func (TripLengthInput) sealed()  {}
func (ReportTimeInput) sealed()  {}
