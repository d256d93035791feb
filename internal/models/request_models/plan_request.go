package request_models

// GeneratePlanRequest is the inbound planning request. Days below 1 are
// clamped to 1 rather than rejected, so binding carries no floor for it;
// travelers defaults to 1 when omitted.
type GeneratePlanRequest struct {
	Days      int      `json:"days"`
	Budget    float64  `json:"budget" binding:"min=0"`
	Travelers int      `json:"travelers"`
	Interests []string `json:"interests"`
	MustVisit []string `json:"must_visit"`
	City      string   `json:"city"`
}

type ReserveTripRequest struct {
	TripID         string `json:"trip_id" binding:"required,uuid4"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Address        string `json:"address"`
	PostCode       string `json:"post_code"`
	Country        string `json:"country"`
	MobilePhone    string `json:"mobile_phone"`
	PassportNumber string `json:"passport_number" binding:"required"`
}
