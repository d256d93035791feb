package db_models

// Traveler holds the reservation contact details captured when a generated
// trip is booked. Upserted by email, so repeated reservations reuse the row.
type Traveler struct {
	BaseModel
	FirstName      string
	LastName       string
	Email          string `gorm:"unique;not null"`
	Address        string
	PostCode       string
	Country        string
	MobilePhone    string
	PassportNumber string `gorm:"not null"`

	Trips []Trip `gorm:"foreignKey:TravelerID"`
}
