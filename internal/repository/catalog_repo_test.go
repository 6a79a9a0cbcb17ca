package repository

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"dealership_review/internal/models"
	"dealership_review/internal/repository/db"

	"github.com/DATA-DOG/go-sqlmock"
)

var testSeed = []models.MakeSeed{
	{
		Make: models.CarMake{Name: "Kia", Description: "Korean"},
		Models: []models.CarModel{
			{Name: "Sorrento", Type: models.CarTypeSUV, Year: 2023},
			{Name: "Cerato", Type: models.CarTypeSedan, Year: 2023},
		},
	},
	{
		Make: models.CarMake{Name: "Audi", Description: "German"},
		Models: []models.CarModel{
			{Name: "A4", Type: models.CarTypeSUV, Year: 2023},
		},
	},
}

func TestCatalogRepository_SeedIfEmpty_SeedsEmptyTable(t *testing.T) {
	conn, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCatalogRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(countCarMakesSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(insertCarMakeSQL)).
		WithArgs("Kia", "Korean").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertCarModelSQL)).
		WithArgs(int64(1), "Sorrento", "SUV", 2023).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertCarModelSQL)).
		WithArgs(int64(1), "Cerato", "SEDAN", 2023).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertCarMakeSQL)).
		WithArgs("Audi", "German").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertCarModelSQL)).
		WithArgs(int64(2), "A4", "SUV", 2023).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	seeded, err := repo.SeedIfEmpty(context.Background(), testSeed)
	if err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	if !seeded {
		t.Fatal("expected seeded=true on empty table")
	}
}

func TestCatalogRepository_SeedIfEmpty_NoopWhenPopulated(t *testing.T) {
	conn, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCatalogRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(countCarMakesSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectRollback()

	seeded, err := repo.SeedIfEmpty(context.Background(), testSeed)
	if err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	if seeded {
		t.Fatal("expected seeded=false on populated table")
	}
}

func TestCatalogRepository_SeedIfEmpty_RollsBackOnInsertError(t *testing.T) {
	conn, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCatalogRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(countCarMakesSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(insertCarMakeSQL)).
		WithArgs("Kia", "Korean").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	if _, err := repo.SeedIfEmpty(context.Background(), testSeed); err == nil {
		t.Fatal("expected error")
	}
}

func TestCatalogRepository_ListCars(t *testing.T) {
	conn, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCatalogRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(selectCarsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"model", "make"}).
			AddRow("A4", "Audi").
			AddRow("Cerato", "Kia"))

	cars, err := repo.ListCars(context.Background())
	if err != nil {
		t.Fatalf("ListCars: %v", err)
	}
	want := []models.CarListing{{CarModel: "A4", CarMake: "Audi"}, {CarModel: "Cerato", CarMake: "Kia"}}
	if len(cars) != len(want) {
		t.Fatalf("got %d cars, want %d", len(cars), len(want))
	}
	for i := range want {
		if cars[i] != want[i] {
			t.Errorf("cars[%d] = %+v, want %+v", i, cars[i], want[i])
		}
	}
}

func TestCatalogRepository_SQLite_SeedOnce(t *testing.T) {
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()
	repo := NewCatalogRepository(conn)
	ctx := context.Background()

	seeded, err := repo.SeedIfEmpty(ctx, testSeed)
	if err != nil || !seeded {
		t.Fatalf("first seed: seeded=%v err=%v", seeded, err)
	}
	seeded, err = repo.SeedIfEmpty(ctx, testSeed)
	if err != nil || seeded {
		t.Fatalf("second seed: seeded=%v err=%v", seeded, err)
	}

	cars, err := repo.ListCars(ctx)
	if err != nil {
		t.Fatalf("ListCars: %v", err)
	}
	if len(cars) != 3 {
		t.Fatalf("expected 3 cars without duplicates, got %d: %+v", len(cars), cars)
	}
	if cars[0] != (models.CarListing{CarModel: "A4", CarMake: "Audi"}) {
		t.Fatalf("expected ordering by make then model, got %+v", cars)
	}
}
