package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lankatrip/internal/models/db_models"
	"lankatrip/internal/models/request_models"
	"lankatrip/internal/services"
	"lankatrip/pkg/utils"
)

func TestReserveTrip(t *testing.T) {
	repo := newMemTripRepo()
	trip := &db_models.Trip{TotalDays: 3}
	require.NoError(t, repo.SaveTrip(context.Background(), trip))

	svc := services.NewTripService(repo)
	res, err := svc.ReserveTrip(context.Background(), request_models.ReserveTripRequest{
		TripID:         trip.ID.String(),
		FirstName:      "Amara",
		LastName:       "Perera",
		Email:          "amara@example.com",
		PassportNumber: "N1234567",
	})
	require.NoError(t, err)

	require.Equal(t, trip.ID.String(), res.TripID)
	require.NotEmpty(t, res.TravelerID)
	require.Equal(t, "amara@example.com", res.Email)

	linked, err := repo.GetTripByID(context.Background(), trip.ID.String())
	require.NoError(t, err)
	require.NotNil(t, linked.TravelerID)
	require.Equal(t, res.TravelerID, linked.TravelerID.String())
}

func TestReserveTripUnknownTrip(t *testing.T) {
	svc := services.NewTripService(newMemTripRepo())

	_, err := svc.ReserveTrip(context.Background(), request_models.ReserveTripRequest{
		TripID: uuid.NewString(),
		Email:  "amara@example.com",
	})
	require.ErrorIs(t, err, utils.ErrTripNotFound)
}
