package response_models

type ReservationResponse struct {
	TripID     string `json:"trip_id"`
	TravelerID string `json:"traveler_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}
