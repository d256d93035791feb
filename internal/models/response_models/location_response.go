package response_models

type LocationResponse struct {
	Name        string   `json:"name"`
	NearestCity string   `json:"nearest_city"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	EntryFee    float64  `json:"entry_fee"`
	VisitHours  float64  `json:"visit_hours"`
	Categories  []string `json:"categories"`
}
