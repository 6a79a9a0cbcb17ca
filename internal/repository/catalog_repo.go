package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dealership_review/internal/models"
)

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

var _ Catalog = (*CatalogRepository)(nil)

const (
	countCarMakesSQL  = `SELECT COUNT(*) FROM car_makes`
	insertCarMakeSQL  = `INSERT INTO car_makes (name, description) VALUES (?, ?)`
	insertCarModelSQL = `INSERT INTO car_models (car_make_id, name, type, year) VALUES (?, ?, ?, ?)`
	selectCarsSQL     = `
SELECT m.name, mk.name
FROM car_models m
JOIN car_makes mk ON mk.id = m.car_make_id
ORDER BY mk.name, m.name`
)

// SeedIfEmpty inserts seed when car_makes has no rows and reports whether it
// did. The emptiness check and the inserts share one transaction.
func (r *CatalogRepository) SeedIfEmpty(ctx context.Context, seed []models.MakeSeed) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var n int
	if err := tx.QueryRowContext(ctx, countCarMakesSQL).Scan(&n); err != nil {
		return false, fmt.Errorf("count car makes: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	for _, s := range seed {
		res, err := tx.ExecContext(ctx, insertCarMakeSQL, s.Make.Name, s.Make.Description)
		if err != nil {
			return false, fmt.Errorf("insert car make %q: %w", s.Make.Name, err)
		}
		makeID, err := res.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("get last insert id for car make %q: %w", s.Make.Name, err)
		}
		for _, m := range s.Models {
			if _, err := tx.ExecContext(ctx, insertCarModelSQL, makeID, m.Name, m.Type, m.Year); err != nil {
				return false, fmt.Errorf("insert car model %q: %w", m.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed transaction: %w", err)
	}
	return true, nil
}

func (r *CatalogRepository) ListCars(ctx context.Context) ([]models.CarListing, error) {
	rows, err := r.db.QueryContext(ctx, selectCarsSQL)
	if err != nil {
		return nil, fmt.Errorf("select cars: %w", err)
	}
	defer rows.Close()

	cars := make([]models.CarListing, 0)
	for rows.Next() {
		var c models.CarListing
		if err := rows.Scan(&c.CarModel, &c.CarMake); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cars: %w", err)
	}
	return cars, nil
}
