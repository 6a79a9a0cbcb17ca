package service

import (
	"context"
	"encoding/json"
	"fmt"

	dr "dealership_review"
	"dealership_review/internal/models"
	"dealership_review/internal/repository"
)

// DealerService proxies dealer reads and review writes to the remote service.
type DealerService struct {
	dealers  repository.DealerAPI
	enricher *SentimentEnricher
}

func NewDealerService(dealers repository.DealerAPI, enricher *SentimentEnricher) *DealerService {
	return &DealerService{dealers: dealers, enricher: enricher}
}

func (s *DealerService) FetchDealers(ctx context.Context, state string) (json.RawMessage, error) {
	return s.dealers.FetchDealers(ctx, state)
}

func (s *DealerService) FetchDealer(ctx context.Context, id string) (json.RawMessage, error) {
	return s.dealers.FetchDealer(ctx, id)
}

// FetchReviews returns the dealer's reviews, each with a fresh sentiment
// label. One failed sentiment call fails the whole list.
func (s *DealerService) FetchReviews(ctx context.Context, dealerID string) ([]models.Review, error) {
	reviews, err := s.dealers.FetchReviews(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	return s.enricher.EnrichAll(ctx, reviews)
}

// StreamReviews is FetchReviews delivered one review at a time. emit errors
// stop the stream.
func (s *DealerService) StreamReviews(ctx context.Context, dealerID string, emit func(models.Review) error) error {
	reviews, err := s.dealers.FetchReviews(ctx, dealerID)
	if err != nil {
		return err
	}
	for _, r := range reviews {
		enriched, err := s.enricher.Enrich(ctx, r)
		if err != nil {
			return err
		}
		if err := emit(enriched); err != nil {
			return err
		}
	}
	return nil
}

// PostReview forwards a review on behalf of an authenticated session.
func (s *DealerService) PostReview(ctx context.Context, session *models.Session, r models.ReviewSubmission) error {
	if session == nil {
		return fmt.Errorf("post review: %w", dr.ErrUnauthorized)
	}
	if err := s.dealers.PostReview(ctx, r); err != nil {
		return fmt.Errorf("post review for %q: %w", session.Username, err)
	}
	return nil
}
