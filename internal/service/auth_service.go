package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dr "dealership_review"
	"dealership_review/internal/models"
	"dealership_review/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 24 * time.Hour

// AuthService handles credentials and server-side sessions. The client holds a
// signed token naming its session; the session row is the source of truth.
type AuthService struct {
	users      repository.Users
	sessions   repository.Sessions
	signingKey []byte
	ttl        time.Duration
	hashCost   int
	now        func() time.Time
}

func NewAuthService(users repository.Users, sessions repository.Sessions, opts Options) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		signingKey: []byte(opts.SigningKey),
		ttl:        ttl,
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// Claims defines JWT claims. ID carries the session id, Subject the username.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Login checks credentials and opens a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, "", fmt.Errorf("missing credentials: %w", dr.ErrInvalidInput)
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", fmt.Errorf("user %q not found: %w", username, dr.ErrUnauthenticated)
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, "", fmt.Errorf("password mismatch for %q: %w", username, dr.ErrUnauthenticated)
	}

	return s.startSession(ctx, u.ID, u.Username)
}

// Register creates an account and opens a session for it.
func (s *AuthService) Register(ctx context.Context, in models.Registration) (*models.Session, string, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, "", fmt.Errorf("missing username or password: %w", dr.ErrInvalidInput)
	}

	existing, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("user %q: %w", in.Username, dr.ErrConflict)
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}
	id, err := s.users.Create(ctx, models.User{
		Username:     in.Username,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
	})
	if err != nil {
		return nil, "", err
	}

	return s.startSession(ctx, id, in.Username)
}

// Logout ends the given session. A nil session is a no-op.
func (s *AuthService) Logout(ctx context.Context, session *models.Session) error {
	if session == nil {
		return nil
	}
	return s.sessions.Delete(ctx, session.ID)
}

// ParseSession resolves a token to its live session. Bad signatures, expired
// tokens and revoked or unknown sessions all yield dr.ErrUnauthenticated.
func (s *AuthService) ParseSession(ctx context.Context, accessToken string) (*models.Session, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("parse token: %v: %w", err, dr.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, fmt.Errorf("invalid token: %w", dr.ErrUnauthenticated)
	}

	session, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session revoked: %w", dr.ErrUnauthenticated)
	}
	if session.Expired(s.now()) || session.UserID != claims.UserID || session.Username != claims.Subject {
		return nil, fmt.Errorf("session mismatch or expired: %w", dr.ErrUnauthenticated)
	}
	return session, nil
}

func (s *AuthService) startSession(ctx context.Context, userID int, username string) (*models.Session, string, error) {
	now := s.now().UTC()
	if _, err := s.sessions.DeleteExpired(ctx, now); err != nil {
		return nil, "", err
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, *session); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(session)
	if err != nil {
		return nil, "", err
	}
	return session, token, nil
}

func (s *AuthService) issueToken(session *models.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   session.Username,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		},
		UserID: session.UserID,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("password is blank: %w", dr.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("hash password: %v: %w", err, dr.ErrInvalidInput)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
