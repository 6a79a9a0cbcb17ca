package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dealership_review/internal/models"
	"dealership_review/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	session     *models.Session
	token       string
	loginErr    error
	registerErr error
	parseErr    error
	logoutErr   error

	lastLoginUsername string
	lastLoginPassword string
	lastRegistration  models.Registration
	lastParseToken    string
	loggedOut         []*models.Session
}

func (m *mockAuth) Login(_ context.Context, username, password string) (*models.Session, string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	if m.loginErr != nil {
		return nil, "", m.loginErr
	}
	return m.session, m.token, nil
}

func (m *mockAuth) Register(_ context.Context, in models.Registration) (*models.Session, string, error) {
	m.lastRegistration = in
	if m.registerErr != nil {
		return nil, "", m.registerErr
	}
	return m.session, m.token, nil
}

func (m *mockAuth) Logout(_ context.Context, s *models.Session) error {
	m.loggedOut = append(m.loggedOut, s)
	return m.logoutErr
}

func (m *mockAuth) ParseSession(_ context.Context, token string) (*models.Session, error) {
	m.lastParseToken = token
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	return m.session, nil
}

type mockDealers struct {
	dealers    json.RawMessage
	dealer     json.RawMessage
	reviews    []models.Review
	err        error
	postErr    error
	lastState  string
	lastID     string
	posted     []models.ReviewSubmission
	postedBy   []*models.Session
	fetchCalls int
}

func (m *mockDealers) FetchDealers(_ context.Context, state string) (json.RawMessage, error) {
	m.fetchCalls++
	m.lastState = state
	return m.dealers, m.err
}

func (m *mockDealers) FetchDealer(_ context.Context, id string) (json.RawMessage, error) {
	m.fetchCalls++
	m.lastID = id
	return m.dealer, m.err
}

func (m *mockDealers) FetchReviews(_ context.Context, dealerID string) ([]models.Review, error) {
	m.fetchCalls++
	m.lastID = dealerID
	if m.err != nil {
		return nil, m.err
	}
	return m.reviews, nil
}

func (m *mockDealers) StreamReviews(_ context.Context, dealerID string, emit func(models.Review) error) error {
	m.lastID = dealerID
	for _, r := range m.reviews {
		if err := emit(r); err != nil {
			return err
		}
	}
	return m.err
}

func (m *mockDealers) PostReview(_ context.Context, s *models.Session, r models.ReviewSubmission) error {
	m.posted = append(m.posted, r)
	m.postedBy = append(m.postedBy, s)
	return m.postErr
}

type mockCatalog struct {
	cars  []models.CarListing
	err   error
	calls int
}

func (m *mockCatalog) EnsureSeeded(context.Context) (bool, error) {
	return false, m.err
}

func (m *mockCatalog) ListCars(context.Context) ([]models.CarListing, error) {
	m.calls++
	return m.cars, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Options{})
	return h.InitRoutes()
}

func testSession() *models.Session {
	return &models.Session{
		ID:        "sid-1",
		UserID:    1,
		Username:  "bob",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// doRequest sends body (if non-empty) as JSON and returns the recorder.
func doRequest(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return m
}
