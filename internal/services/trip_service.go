package services

import (
	"context"
	"log"

	"lankatrip/internal/models/db_models"
	"lankatrip/internal/models/request_models"
	"lankatrip/internal/models/response_models"
	"lankatrip/internal/repositories"
	"lankatrip/pkg/utils"
)

type TripServiceInterface interface {
	ReserveTrip(ctx context.Context, req request_models.ReserveTripRequest) (*response_models.ReservationResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

// ReserveTrip books a previously generated trip: the traveler contact is
// upserted by email and the trip row is linked to it.
func (t *TripService) ReserveTrip(ctx context.Context, req request_models.ReserveTripRequest) (*response_models.ReservationResponse, error) {
	trip, err := t.tripRepo.GetTripByID(ctx, req.TripID)
	if err != nil {
		log.Printf("reserve: fetching trip %s failed: %v", req.TripID, err)
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	traveler := &db_models.Traveler{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Address:        req.Address,
		PostCode:       req.PostCode,
		Country:        req.Country,
		MobilePhone:    req.MobilePhone,
		PassportNumber: req.PassportNumber,
	}
	if err := t.tripRepo.UpsertTraveler(ctx, traveler); err != nil {
		log.Printf("reserve: upserting traveler failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if err := t.tripRepo.LinkTraveler(ctx, trip.ID, traveler.ID); err != nil {
		log.Printf("reserve: linking traveler to trip failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ReservationResponse{
		TripID:     trip.ID.String(),
		TravelerID: traveler.ID.String(),
		Email:      traveler.Email,
		FirstName:  traveler.FirstName,
		LastName:   traveler.LastName,
	}, nil
}
