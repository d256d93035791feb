package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Trip struct {
	BaseModel
	TravelerID      *uuid.UUID
	StartFrom       string
	TotalDays       int
	Travelers       int
	TotalBudget     float64
	RemainingBudget float64
	Interests       pq.StringArray `gorm:"type:text[]"`
	MustVisit       pq.StringArray `gorm:"type:text[]"`
	Narrative       string

	Stops []TripStop `gorm:"foreignKey:TripID"`
}

// TripStop is one scheduled visit inside a persisted trip. StepOrder is the
// position within the day after route sequencing.
type TripStop struct {
	BaseModel
	TripID              uuid.UUID `gorm:"index;not null"`
	DayNumber           int
	StepOrder           int
	LocationName        string
	NearestCity         string
	Cost                float64
	VisitMinutes        int
	TravelToNextMinutes *int
}
