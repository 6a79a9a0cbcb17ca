package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	dr "dealership_review"
	"dealership_review/internal/models"
)

// AllStates is the state value that selects the unscoped dealer listing.
const AllStates = "All"

const defaultReviewPath = "/insert_review"

// DealerClient is the gateway to the dealership/review service.
type DealerClient struct {
	*client
	reviewPath string
}

// NewDealerClient builds a dealership client. An empty reviewPath uses
// /insert_review.
func NewDealerClient(opts Options, reviewPath string) *DealerClient {
	if reviewPath == "" {
		reviewPath = defaultReviewPath
	}
	return &DealerClient{client: newClient(opts), reviewPath: reviewPath}
}

// dealersPath maps "" and "All" to the unscoped listing.
func dealersPath(state string) string {
	state = strings.TrimSpace(state)
	if state == "" || state == AllStates {
		return "/fetchDealers"
	}
	return "/fetchDealers/" + url.PathEscape(state)
}

// FetchDealers returns the dealer listing, optionally scoped to a state,
// exactly as the service returned it.
func (c *DealerClient) FetchDealers(ctx context.Context, state string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.getJSON(ctx, dealersPath(state), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DealerClient) FetchDealer(ctx context.Context, id string) (json.RawMessage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("fetch dealer: empty id: %w", dr.ErrInvalidInput)
	}
	var out json.RawMessage
	if err := c.getJSON(ctx, "/fetchDealer/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DealerClient) FetchReviews(ctx context.Context, dealerID string) ([]models.Review, error) {
	dealerID = strings.TrimSpace(dealerID)
	if dealerID == "" {
		return nil, fmt.Errorf("fetch reviews: empty dealer id: %w", dr.ErrInvalidInput)
	}
	var reviews []models.Review
	if err := c.getJSON(ctx, "/fetchReviews/dealer/"+url.PathEscape(dealerID), &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// PostReview submits a review. Any non-2xx response is an error.
func (c *DealerClient) PostReview(ctx context.Context, r models.ReviewSubmission) error {
	return c.postJSON(ctx, c.reviewPath, r, nil)
}
