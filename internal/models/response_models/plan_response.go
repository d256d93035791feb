package response_models

// PlanPlace is one scheduled stop. TravelTimeToNextMinutes is nil on the last
// stop of a day.
type PlanPlace struct {
	Name                    string  `json:"name"`
	Category                string  `json:"category"`
	Cost                    float64 `json:"cost"`
	TimeRequiredMinutes     int     `json:"time_required_minutes"`
	TravelTimeToNextMinutes *int    `json:"travel_time_to_next_minutes"`
}

type PlanDay struct {
	Day                  int         `json:"day"`
	Places               []PlanPlace `json:"places"`
	DayTotalTimeHours    float64     `json:"day_total_time_hours"`
	DayTravelTimeMinutes int         `json:"day_travel_time_minutes"`
}

type PlanResponse struct {
	TripID          string    `json:"trip_id,omitempty"`
	StartFrom       string    `json:"start_from"`
	TotalDays       int       `json:"total_days"`
	TotalBudget     float64   `json:"total_budget"`
	RemainingBudget float64   `json:"remaining_budget"`
	Plan            []PlanDay `json:"plan"`
	Narrative       string    `json:"narrative,omitempty"`
}
