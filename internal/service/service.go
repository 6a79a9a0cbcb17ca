package service

import (
	"context"
	"encoding/json"
	"time"

	"dealership_review/internal/models"
	"dealership_review/internal/repository"
)

// Authorization is the session/identity handler.
type Authorization interface {
	Login(ctx context.Context, username, password string) (*models.Session, string, error)
	Register(ctx context.Context, in models.Registration) (*models.Session, string, error)
	Logout(ctx context.Context, session *models.Session) error
	ParseSession(ctx context.Context, token string) (*models.Session, error)
}

// Dealers proxies the dealership/review service and enriches reviews with
// sentiment.
type Dealers interface {
	FetchDealers(ctx context.Context, state string) (json.RawMessage, error)
	FetchDealer(ctx context.Context, id string) (json.RawMessage, error)
	FetchReviews(ctx context.Context, dealerID string) ([]models.Review, error)
	StreamReviews(ctx context.Context, dealerID string, emit func(models.Review) error) error
	PostReview(ctx context.Context, session *models.Session, r models.ReviewSubmission) error
}

// Catalog serves the local car make/model table, seeding it on first use.
type Catalog interface {
	EnsureSeeded(ctx context.Context) (bool, error)
	ListCars(ctx context.Context) ([]models.CarListing, error)
}

type Service struct {
	Authorization
	Dealers
	Catalog
}

// Options carries the service-level settings main reads from config.
type Options struct {
	SigningKey string
	SessionTTL time.Duration
}

func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Sessions, opts),
		Dealers:       NewDealerService(repos.Dealers, NewSentimentEnricher(repos.Sentiment)),
		Catalog:       NewCatalogService(repos.Catalog, DefaultCatalogSeed()),
	}
}
