package service

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	dr "dealership_review"
	"dealership_review/internal/models"
)

func TestDealerService_FetchDealers_PassesThrough(t *testing.T) {
	api := &fakeDealerAPI{dealers: json.RawMessage(`[{"id":1}]`)}
	svc := NewDealerService(api, NewSentimentEnricher(&fakeSentiment{}))

	out, err := svc.FetchDealers(context.Background(), "TX")
	if err != nil {
		t.Fatalf("FetchDealers: %v", err)
	}
	if string(out) != `[{"id":1}]` || api.lastState != "TX" {
		t.Fatalf("unexpected result %s (state %q)", out, api.lastState)
	}
}

func TestDealerService_FetchReviews_AddsOneSentimentPerReview(t *testing.T) {
	original := []models.Review{
		{"id": float64(1), "name": "Ann", "review": "Loved it", "car_year": float64(2021)},
		{"id": float64(2), "name": "Ben", "review": "Terrible"},
		{"id": float64(3), "name": "Cat", "review": nil},
	}
	// deep copy to compare against after enrichment
	var want []map[string]any
	raw, _ := json.Marshal(original)
	_ = json.Unmarshal(raw, &want)

	api := &fakeDealerAPI{reviews: original}
	sentiment := &fakeSentiment{labels: map[string]string{"Loved it": "positive", "Terrible": "negative"}}
	svc := NewDealerService(api, NewSentimentEnricher(sentiment))

	got, err := svc.FetchReviews(context.Background(), "15")
	if err != nil {
		t.Fatalf("FetchReviews: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d reviews, want %d", len(got), len(want))
	}

	labels := []string{"positive", "negative", "neutral"}
	for i, r := range got {
		if r[models.SentimentKey] != labels[i] {
			t.Errorf("review %d sentiment = %v, want %s", i, r[models.SentimentKey], labels[i])
		}
		if len(r) != len(want[i])+1 {
			t.Errorf("review %d: expected exactly one added field, got %d -> %d", i, len(want[i]), len(r))
		}
		stripped := map[string]any{}
		for k, v := range r {
			if k != models.SentimentKey {
				stripped[k] = v
			}
		}
		if !reflect.DeepEqual(stripped, want[i]) {
			t.Errorf("review %d content changed: got %v, want %v", i, stripped, want[i])
		}
	}
	if !reflect.DeepEqual(sentiment.texts, []string{"Loved it", "Terrible", ""}) {
		t.Errorf("unexpected sentiment inputs %q", sentiment.texts)
	}
}

func TestDealerService_FetchReviews_CoercesNonStringText(t *testing.T) {
	api := &fakeDealerAPI{reviews: []models.Review{{"review": float64(5)}}}
	sentiment := &fakeSentiment{}
	svc := NewDealerService(api, NewSentimentEnricher(sentiment))

	if _, err := svc.FetchReviews(context.Background(), "1"); err != nil {
		t.Fatalf("FetchReviews: %v", err)
	}
	if len(sentiment.texts) != 1 || sentiment.texts[0] != "5" {
		t.Fatalf("expected coerced text \"5\", got %q", sentiment.texts)
	}
}

func TestDealerService_FetchReviews_SentimentFailureAbortsList(t *testing.T) {
	api := &fakeDealerAPI{reviews: []models.Review{
		{"review": "fine"},
		{"review": "explode"},
		{"review": "never reached"},
	}}
	sentiment := &fakeSentiment{failOn: "explode"}
	svc := NewDealerService(api, NewSentimentEnricher(sentiment))

	got, err := svc.FetchReviews(context.Background(), "1")
	if !errors.Is(err, dr.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no partial list, got %v", got)
	}
	if len(sentiment.texts) != 2 {
		t.Fatalf("expected enrichment to stop at the failure, got %d calls", len(sentiment.texts))
	}
}

func TestDealerService_FetchReviews_UpstreamError(t *testing.T) {
	api := &fakeDealerAPI{err: dr.ErrUpstreamUnavailable}
	sentiment := &fakeSentiment{}
	svc := NewDealerService(api, NewSentimentEnricher(sentiment))

	if _, err := svc.FetchReviews(context.Background(), "1"); !errors.Is(err, dr.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if len(sentiment.texts) != 0 {
		t.Fatal("sentiment should not be called when reviews fail")
	}
}

func TestDealerService_StreamReviews(t *testing.T) {
	api := &fakeDealerAPI{reviews: []models.Review{{"review": "a"}, {"review": "b"}}}
	svc := NewDealerService(api, NewSentimentEnricher(&fakeSentiment{labels: map[string]string{"a": "positive"}}))

	var got []models.Review
	err := svc.StreamReviews(context.Background(), "7", func(r models.Review) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("StreamReviews: %v", err)
	}
	if len(got) != 2 || got[0][models.SentimentKey] != "positive" || got[1][models.SentimentKey] != "neutral" {
		t.Fatalf("unexpected stream %v", got)
	}

	stop := errors.New("client gone")
	calls := 0
	err = svc.StreamReviews(context.Background(), "7", func(models.Review) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("expected emit error to stop stream after 1 call, got err=%v calls=%d", err, calls)
	}
}

func TestDealerService_PostReview(t *testing.T) {
	review := models.ReviewSubmission{Name: "Bob", Dealership: 15, Review: "ok"}

	t.Run("no session", func(t *testing.T) {
		api := &fakeDealerAPI{}
		svc := NewDealerService(api, NewSentimentEnricher(&fakeSentiment{}))

		if err := svc.PostReview(context.Background(), nil, review); !errors.Is(err, dr.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		if len(api.posted) != 0 {
			t.Fatal("review must not be forwarded without a session")
		}
	})

	t.Run("forwards", func(t *testing.T) {
		api := &fakeDealerAPI{}
		svc := NewDealerService(api, NewSentimentEnricher(&fakeSentiment{}))

		if err := svc.PostReview(context.Background(), &models.Session{Username: "bob"}, review); err != nil {
			t.Fatalf("PostReview: %v", err)
		}
		if len(api.posted) != 1 || api.posted[0] != review {
			t.Fatalf("unexpected forwarded reviews %+v", api.posted)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		api := &fakeDealerAPI{postErr: dr.ErrUpstreamUnavailable}
		svc := NewDealerService(api, NewSentimentEnricher(&fakeSentiment{}))

		if err := svc.PostReview(context.Background(), &models.Session{Username: "bob"}, review); !errors.Is(err, dr.ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}
