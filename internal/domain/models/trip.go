package models

// Trip is one published pairing as it appears in the trip report. Time
// fields are HH:MM strings; ReportTimeLocal is empty when unknown.
type Trip struct {
	TripNumber           string   `json:"trip_number" yaml:"trip_number"`
	Route                string   `json:"route" yaml:"route"`
	DepartureBase        string   `json:"departure_base,omitempty" yaml:"departure_base"`
	PlanningPeriod       string   `json:"planning_period,omitempty" yaml:"planning_period"`
	TAFB                 string   `json:"tafb,omitempty" yaml:"tafb"`
	TripCredit           string   `json:"trip_credit,omitempty" yaml:"trip_credit"`
	TripDays             int      `json:"trip_days" yaml:"trip_days"`
	FlyingHours          string   `json:"flying_hours,omitempty" yaml:"flying_hours"`
	DutyHours            string   `json:"duty_hours,omitempty" yaml:"duty_hours"`
	LayoverHoursEstimate *float64 `json:"layover_hours_estimate,omitempty" yaml:"layover_hours_estimate"`
	ReportTimeLocal      string   `json:"report_time_local,omitempty" yaml:"report_time_local"`
}
