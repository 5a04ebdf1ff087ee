package dto

type TripRecord struct {
	TripNumber      string   `json:"trip_number"`
	Route           string   `json:"route"`
	DepartureBase   string   `json:"departure_base"`
	PlanningPeriod  string   `json:"planning_period"`
	TAFB            string   `json:"tafb"`
	TripCredit      string   `json:"trip_credit"`
	TripDays        int      `json:"trip_days"`
	FlyingHours     string   `json:"flying_hours"`
	DutyHours       string   `json:"duty_hours"`
	LayoverHours    *float64 `json:"layover_hours_estimate"`
	ReportTimeLocal string   `json:"report_time_local"`
}

type TripsResponse struct {
	Data []TripRecord `json:"data"`
}
