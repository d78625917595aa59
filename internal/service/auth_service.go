package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"miva-analytics-be/internal/dto"
	"miva-analytics-be/internal/repository/memory"
	"miva-analytics-be/pkg/events"
	"miva-analytics-be/pkg/store"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	checker     CredentialChecker
	sessionRepo *memory.SessionRepository
	publisher   IPublisherService
	sessionTTL  time.Duration
	validate    *validator.Validate
}

func NewAuthService(checker CredentialChecker, sessionRepo *memory.SessionRepository, publisher IPublisherService, sessionTTL time.Duration) IAuthService {
	return &authService{
		checker:     checker,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		sessionTTL:  sessionTTL,
		validate:    validator.New(),
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, ErrInvalidCredentials
	}

	// One generic failure for both wrong username and wrong password.
	if !s.checker.Check(req.Username, req.Password) {
		return nil, ErrInvalidCredentials
	}

	session := &store.Session{
		ID:        uuid.New().String(),
		Username:  req.Username,
		IpAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	s.sessionRepo.Save(session)

	claims := jwt.MapClaims{
		"session_id": session.ID,
		"username":   session.Username,
		"role":       "operator",
		"exp":        time.Now().Add(s.sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := events.BaseEvent{
			Type: events.TypeOperatorLogin,
			Data: map[string]interface{}{
				"username": session.Username,
				"ip":       ipAddress,
				"device":   userAgent,
			},
			OccurredAt: time.Now(),
		}
		if err := s.publisher.PublishAudit(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeOperatorLogin, err)
		}
	}

	return &dto.LoginResponse{
		AccessToken: signedToken,
		Username:    session.Username,
		ExpiresIn:   int(s.sessionTTL.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	session, found := s.sessionRepo.Get(sessionID)
	if !found {
		return nil // already gone, logout is idempotent
	}
	s.sessionRepo.Delete(sessionID)

	if s.publisher != nil {
		event := events.BaseEvent{
			Type: events.TypeOperatorLogout,
			Data: map[string]interface{}{
				"username": session.Username,
			},
			OccurredAt: time.Now(),
		}
		if err := s.publisher.PublishAudit(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeOperatorLogout, err)
		}
	}
	return nil
}
