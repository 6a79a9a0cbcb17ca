package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"dealership_review/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Sessions interface {
	Create(ctx context.Context, s models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type Catalog interface {
	SeedIfEmpty(ctx context.Context, seed []models.MakeSeed) (bool, error)
	ListCars(ctx context.Context) ([]models.CarListing, error)
}

// DealerAPI is the remote dealership/review service.
type DealerAPI interface {
	FetchDealers(ctx context.Context, state string) (json.RawMessage, error)
	FetchDealer(ctx context.Context, id string) (json.RawMessage, error)
	FetchReviews(ctx context.Context, dealerID string) ([]models.Review, error)
	PostReview(ctx context.Context, r models.ReviewSubmission) error
}

// SentimentAPI is the remote sentiment-analysis service.
type SentimentAPI interface {
	AnalyzeSentiment(ctx context.Context, text string) (string, error)
}

type Repository struct {
	Users     Users
	Sessions  Sessions
	Catalog   Catalog
	Dealers   DealerAPI
	Sentiment SentimentAPI
}

func NewRepository(db *sql.DB, dealers DealerAPI, sentiment SentimentAPI) *Repository {
	return &Repository{
		Users:     NewUserRepository(db),
		Sessions:  NewSessionRepository(db),
		Catalog:   NewCatalogRepository(db),
		Dealers:   dealers,
		Sentiment: sentiment,
	}
}
