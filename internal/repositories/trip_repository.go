package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lankatrip/internal/models/db_models"
)

type TripRepository interface {
	SaveTrip(ctx context.Context, trip *db_models.Trip) error
	GetTripByID(ctx context.Context, id string) (*db_models.Trip, error)
	UpsertTraveler(ctx context.Context, traveler *db_models.Traveler) error
	LinkTraveler(ctx context.Context, tripID, travelerID uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) SaveTrip(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetTripByID(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("Stops").
		First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// UpsertTraveler inserts or refreshes the traveler row keyed by email and
// loads the row back so the caller sees the stable ID.
func (r *tripRepository) UpsertTraveler(ctx context.Context, traveler *db_models.Traveler) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name", "last_name", "address", "post_code",
				"country", "mobile_phone", "passport_number", "updated_at",
			}),
		}).Create(traveler).Error
		if err != nil {
			return err
		}
		return tx.First(traveler, "email = ?", traveler.Email).Error
	})
}

func (r *tripRepository) LinkTraveler(ctx context.Context, tripID, travelerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ?", tripID).
		Update("traveler_id", travelerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
