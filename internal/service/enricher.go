package service

import (
	"context"
	"fmt"

	"dealership_review/internal/models"
	"dealership_review/internal/repository"

	"github.com/spf13/cast"
)

// SentimentEnricher labels reviews using the sentiment service. Labels are
// never cached.
type SentimentEnricher struct {
	sentiment repository.SentimentAPI
}

func NewSentimentEnricher(sentiment repository.SentimentAPI) *SentimentEnricher {
	return &SentimentEnricher{sentiment: sentiment}
}

// Enrich adds the sentiment key to r and leaves every other field untouched.
func (e *SentimentEnricher) Enrich(ctx context.Context, r models.Review) (models.Review, error) {
	text := cast.ToString(r.Text())
	label, err := e.sentiment.AnalyzeSentiment(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analyze review %v: %w", r["id"], err)
	}
	return r.WithSentiment(label), nil
}

// EnrichAll enriches reviews in order and stops at the first failure.
func (e *SentimentEnricher) EnrichAll(ctx context.Context, reviews []models.Review) ([]models.Review, error) {
	out := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		enriched, err := e.Enrich(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, enriched)
	}
	return out, nil
}
