package services

import (
	"lankatrip/internal/models/response_models"
)

// AssemblePlan zips sequenced days with their bucket totals into the outbound
// plan shape. Purely structural: day order is preserved and empty days are
// kept, never dropped.
func AssemblePlan(
	sequenced []SequencedDay,
	buckets []DayBucket,
	totalBudget float64,
	remainingBudget float64,
	startLabel string,
) response_models.PlanResponse {
	planDays := make([]response_models.PlanDay, 0, len(buckets))

	for i, bucket := range buckets {
		day := response_models.PlanDay{
			Day:    bucket.Day,
			Places: []response_models.PlanPlace{},
		}
		day.DayTotalTimeHours = bucket.TimeUsed

		if i < len(sequenced) {
			for _, stop := range sequenced[i].Stops {
				place := response_models.PlanPlace{
					Name:                stop.Location.Name,
					Category:            stop.Location.NearestCity,
					Cost:                stop.Location.EntryFee,
					TimeRequiredMinutes: int(stop.Location.VisitHours * 60),
				}
				if stop.TravelToNextSeconds != nil {
					minutes := *stop.TravelToNextSeconds / 60
					place.TravelTimeToNextMinutes = &minutes
					day.DayTravelTimeMinutes += minutes
				}
				day.Places = append(day.Places, place)
			}
		}

		planDays = append(planDays, day)
	}

	return response_models.PlanResponse{
		StartFrom:       startLabel,
		TotalDays:       len(buckets),
		TotalBudget:     totalBudget,
		RemainingBudget: remainingBudget,
		Plan:            planDays,
	}
}
