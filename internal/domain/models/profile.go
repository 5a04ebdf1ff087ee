package models

type ReserveAvoidance string

const (
	ReserveOK    ReserveAvoidance = "OK"
	ReserveAvoid ReserveAvoidance = "AVOID"
	ReserveHate  ReserveAvoidance = "HATE"
)

type DestinationRule struct {
	Mode      CommandKind `json:"mode" yaml:"mode"`
	Qualifier string      `json:"qualifier" yaml:"qualifier"`
	TripPool  TripPool    `json:"trip_pool,omitempty" yaml:"trip_pool"`
}

// TripLengthRule covers MinDays..MaxDays inclusive; a nil MaxDays means
// "MinDays or more".
type TripLengthRule struct {
	Mode     CommandKind `json:"mode" yaml:"mode"`
	MinDays  int         `json:"min_days" yaml:"min_days"`
	MaxDays  *int        `json:"max_days,omitempty" yaml:"max_days"`
	TripPool TripPool    `json:"trip_pool,omitempty" yaml:"trip_pool"`
}

// PreferenceProfile is a pilot's durable preference set. When
// DestinationRules or TripLengthRules are non-empty they supersede the
// simple destination lists and PreferLongTrips respectively.
type PreferenceProfile struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Fleet           string `json:"fleet" yaml:"fleet"`
	Seat            string `json:"seat" yaml:"seat"`
	SeniorityNumber int    `json:"seniority_number" yaml:"seniority_number"`

	PreferredDestinations []string          `json:"preferred_destinations" yaml:"preferred_destinations"`
	AvoidDestinations     []string          `json:"avoid_destinations" yaml:"avoid_destinations"`
	DestinationRules      []DestinationRule `json:"destination_rules,omitempty" yaml:"destination_rules"`
	TripLengthRules       []TripLengthRule  `json:"trip_length_rules,omitempty" yaml:"trip_length_rules"`

	EarliestPreferredReportTime string `json:"earliest_preferred_report_time,omitempty" yaml:"earliest_preferred_report_time"`
	LatestPreferredReportTime   string `json:"latest_preferred_report_time,omitempty" yaml:"latest_preferred_report_time"`

	PreferLongTrips       bool             `json:"prefer_long_trips" yaml:"prefer_long_trips"`
	PreferLongLayovers    bool             `json:"prefer_long_layovers" yaml:"prefer_long_layovers"`
	ReserveAvoidanceLevel ReserveAvoidance `json:"reserve_avoidance_level" yaml:"reserve_avoidance_level"`
}
