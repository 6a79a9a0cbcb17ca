package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	dr "dealership_review"
	"dealership_review/internal/models"
)

// fakeUsers is an in-memory repository.Users.
type fakeUsers struct {
	byName   map[string]models.User
	nextID   int
	getErr   error
	createFn func(u models.User) (int, error)

	createCalls []models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byName: map[string]models.User{}, nextID: 1}
}

func (f *fakeUsers) Create(_ context.Context, u models.User) (int, error) {
	f.createCalls = append(f.createCalls, u)
	if f.createFn != nil {
		return f.createFn(u)
	}
	if _, ok := f.byName[u.Username]; ok {
		return 0, dr.ErrConflict
	}
	u.ID = f.nextID
	f.nextID++
	f.byName[u.Username] = u
	return u.ID, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// fakeSessions is an in-memory repository.Sessions that resolves usernames
// through users, mirroring the SQL join.
type fakeSessions struct {
	mu        sync.Mutex
	rows      map[string]models.Session
	createErr error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{rows: map[string]models.Session{}}
}

func (f *fakeSessions) Create(_ context.Context, s models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.rows[s.ID] = s
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

func (f *fakeSessions) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, s := range f.rows {
		if s.Expired(now) {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeSessions) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

// fakeDealerAPI is a scripted repository.DealerAPI.
type fakeDealerAPI struct {
	dealers   json.RawMessage
	dealer    json.RawMessage
	reviews   []models.Review
	err       error
	postErr   error
	lastState string
	lastID    string
	posted    []models.ReviewSubmission
}

func (f *fakeDealerAPI) FetchDealers(_ context.Context, state string) (json.RawMessage, error) {
	f.lastState = state
	return f.dealers, f.err
}

func (f *fakeDealerAPI) FetchDealer(_ context.Context, id string) (json.RawMessage, error) {
	f.lastID = id
	return f.dealer, f.err
}

func (f *fakeDealerAPI) FetchReviews(_ context.Context, dealerID string) ([]models.Review, error) {
	f.lastID = dealerID
	return f.reviews, f.err
}

func (f *fakeDealerAPI) PostReview(_ context.Context, r models.ReviewSubmission) error {
	f.posted = append(f.posted, r)
	return f.postErr
}

// fakeSentiment labels by text; failOn makes one text fail.
type fakeSentiment struct {
	labels map[string]string
	failOn string
	texts  []string
}

func (f *fakeSentiment) AnalyzeSentiment(_ context.Context, text string) (string, error) {
	f.texts = append(f.texts, text)
	if text == f.failOn {
		return "", dr.ErrUpstreamUnavailable
	}
	if l, ok := f.labels[text]; ok {
		return l, nil
	}
	return "neutral", nil
}

// fakeCatalogRepo mimics the emptiness-guarded seed.
type fakeCatalogRepo struct {
	makes    int
	cars     []models.CarListing
	seedErr  error
	seedRuns int
}

func (f *fakeCatalogRepo) SeedIfEmpty(_ context.Context, seed []models.MakeSeed) (bool, error) {
	if f.seedErr != nil {
		return false, f.seedErr
	}
	if f.makes > 0 {
		return false, nil
	}
	f.seedRuns++
	for _, s := range seed {
		f.makes++
		for _, m := range s.Models {
			f.cars = append(f.cars, models.CarListing{CarModel: m.Name, CarMake: s.Make.Name})
		}
	}
	return true, nil
}

func (f *fakeCatalogRepo) ListCars(context.Context) ([]models.CarListing, error) {
	return f.cars, nil
}

var errBoom = errors.New("boom")
