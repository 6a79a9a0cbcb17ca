package service

import (
	"context"

	"dealership_review/internal/models"
	"dealership_review/internal/repository"
)

type CatalogService struct {
	repo repository.Catalog
	seed []models.MakeSeed
}

func NewCatalogService(repo repository.Catalog, seed []models.MakeSeed) *CatalogService {
	return &CatalogService{repo: repo, seed: seed}
}

// EnsureSeeded loads the seed set when the make table is empty.
func (s *CatalogService) EnsureSeeded(ctx context.Context) (bool, error) {
	return s.repo.SeedIfEmpty(ctx, s.seed)
}

func (s *CatalogService) ListCars(ctx context.Context) ([]models.CarListing, error) {
	if _, err := s.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListCars(ctx)
}

// DefaultCatalogSeed is the initial make/model set.
func DefaultCatalogSeed() []models.MakeSeed {
	return []models.MakeSeed{
		{
			Make: models.CarMake{Name: "NISSAN", Description: "Great cars. Japanese technology"},
			Models: []models.CarModel{
				{Name: "Pathfinder", Type: models.CarTypeSUV, Year: 2023},
				{Name: "Qashqai", Type: models.CarTypeSUV, Year: 2023},
				{Name: "XTRAIL", Type: models.CarTypeSUV, Year: 2023},
			},
		},
		{
			Make: models.CarMake{Name: "Mercedes", Description: "Great cars. German technology"},
			Models: []models.CarModel{
				{Name: "A-Class", Type: models.CarTypeSUV, Year: 2023},
				{Name: "C-Class", Type: models.CarTypeSUV, Year: 2023},
				{Name: "E-Class", Type: models.CarTypeSUV, Year: 2023},
			},
		},
		{
			Make: models.CarMake{Name: "Audi", Description: "Great cars. German technology"},
			Models: []models.CarModel{
				{Name: "A4", Type: models.CarTypeSUV, Year: 2023},
				{Name: "A5", Type: models.CarTypeSUV, Year: 2023},
				{Name: "A6", Type: models.CarTypeSUV, Year: 2023},
			},
		},
		{
			Make: models.CarMake{Name: "Kia", Description: "Great cars. Korean technology"},
			Models: []models.CarModel{
				{Name: "Sorrento", Type: models.CarTypeSUV, Year: 2023},
				{Name: "Carnival", Type: models.CarTypeSUV, Year: 2023},
				{Name: "Cerato", Type: models.CarTypeSedan, Year: 2023},
			},
		},
		{
			Make: models.CarMake{Name: "Toyota", Description: "Great cars. Japanese technology"},
			Models: []models.CarModel{
				{Name: "Corolla", Type: models.CarTypeSedan, Year: 2023},
				{Name: "Camry", Type: models.CarTypeSedan, Year: 2023},
				{Name: "Kluger", Type: models.CarTypeSUV, Year: 2023},
			},
		},
	}
}
