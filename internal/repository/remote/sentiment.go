package remote

import (
	"context"
	"fmt"
	"strings"

	dr "dealership_review"
)

const defaultSentimentPath = "/analyze"

// SentimentClient is the gateway to the sentiment-analysis service.
type SentimentClient struct {
	*client
	path string
}

func NewSentimentClient(opts Options, path string) *SentimentClient {
	if path == "" {
		path = defaultSentimentPath
	}
	return &SentimentClient{client: newClient(opts), path: path}
}

type sentimentRequest struct {
	Text string `json:"text"`
}

type sentimentResponse struct {
	Sentiment string `json:"sentiment"`
}

// AnalyzeSentiment returns the label (positive, neutral, negative, ...) the
// service assigns to text.
func (c *SentimentClient) AnalyzeSentiment(ctx context.Context, text string) (string, error) {
	var out sentimentResponse
	if err := c.postJSON(ctx, c.path, sentimentRequest{Text: text}, &out); err != nil {
		return "", err
	}
	label := strings.TrimSpace(out.Sentiment)
	if label == "" {
		return "", fmt.Errorf("%w: empty sentiment label", dr.ErrUpstreamUnavailable)
	}
	return label, nil
}
