package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lankatrip/internal/models/request_models"
	"lankatrip/internal/services"
	"lankatrip/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
	tripService services.TripServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface, tripService services.TripServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
		tripService: tripService,
	}
}

// GeneratePlan builds a personalized multi-day itinerary from the traveler's
// interests, budget, party size and optional must-visit stops.
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid planning request: "+err.Error())
		return
	}

	plan, err := p.planService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan generated successfully")
}

// ReserveTrip books a generated trip for a traveler contact.
func (p *PlanController) ReserveTrip(c *gin.Context) {
	var req request_models.ReserveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid reservation request: "+err.Error())
		return
	}

	reservation, err := p.tripService.ReserveTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reservation, "Trip reserved successfully")
}
