package models

// SentimentKey is the field added to every review returned to callers.
const SentimentKey = "sentiment"

// Review is a review object as returned by the dealership service. Fields are
// passed through untouched; only the sentiment key is added.
type Review map[string]any

// Text returns the raw review content field.
func (r Review) Text() any {
	return r["review"]
}

// WithSentiment sets the sentiment label in place and returns the review.
func (r Review) WithSentiment(label string) Review {
	r[SentimentKey] = label
	return r
}

// ReviewSubmission is the payload accepted by POST /review and forwarded to the
// dealership service.
type ReviewSubmission struct {
	Name         string `json:"name" binding:"required"`
	Dealership   int    `json:"dealership" binding:"required,gt=0"`
	Review       string `json:"review" binding:"required"`
	Purchase     bool   `json:"purchase"`
	PurchaseDate string `json:"purchase_date,omitempty"`
	CarMake      string `json:"car_make,omitempty"`
	CarModel     string `json:"car_model,omitempty"`
	CarYear      int    `json:"car_year,omitempty"`
}
