package services

import (
	"context"
	"strings"

	"lankatrip/internal/models/catalog_models"
	"lankatrip/internal/models/response_models"
	"lankatrip/pkg/utils"
)

type LocationServiceInterface interface {
	ListLocations(ctx context.Context, city string, page, pageSize int) ([]response_models.LocationResponse, error)
	GetLocationByName(ctx context.Context, name string) (response_models.LocationResponse, error)
}

type LocationService struct {
	catalog CatalogProvider
}

func NewLocationService(catalog CatalogProvider) LocationServiceInterface {
	return &LocationService{catalog: catalog}
}

func toLocationResponse(loc catalog_models.Location) response_models.LocationResponse {
	return response_models.LocationResponse{
		Name:        loc.Name,
		NearestCity: loc.NearestCity,
		Latitude:    loc.Coord.Lat,
		Longitude:   loc.Coord.Lon,
		EntryFee:    loc.EntryFee,
		VisitHours:  loc.VisitHours,
		Categories:  loc.Categories.Names(),
	}
}

func (s *LocationService) ListLocations(ctx context.Context, city string, page, pageSize int) ([]response_models.LocationResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	cityKey := strings.ToLower(strings.TrimSpace(city))

	var filtered []catalog_models.Location
	for _, loc := range s.catalog.Snapshot().Locations() {
		if cityKey != "" && strings.ToLower(strings.TrimSpace(loc.NearestCity)) != cityKey {
			continue
		}
		filtered = append(filtered, loc)
	}

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []response_models.LocationResponse{}, nil
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	out := make([]response_models.LocationResponse, 0, end-start)
	for _, loc := range filtered[start:end] {
		out = append(out, toLocationResponse(loc))
	}
	return out, nil
}

func (s *LocationService) GetLocationByName(ctx context.Context, name string) (response_models.LocationResponse, error) {
	loc, ok := s.catalog.Snapshot().FindByName(name)
	if !ok {
		return response_models.LocationResponse{}, utils.ErrLocationNotFound
	}
	return toLocationResponse(loc), nil
}
