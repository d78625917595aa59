package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"miva-analytics-be/internal/config"
	"miva-analytics-be/internal/dto"
	"miva-analytics-be/internal/pkg/serverutils"
	"miva-analytics-be/internal/repository/memory"
)

func newTestAuthService(t *testing.T) (IAuthService, *memory.SessionRepository) {
	t.Helper()
	checker := NewEnvCredentialChecker(config.AuthConfig{
		Username: "miva_admin",
		Password: "s3cret",
	})
	sessions := memory.NewSessionRepository(time.Minute)
	return NewAuthService(checker, sessions, nil, time.Minute), sessions
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong username", "admin", "s3cret"},
		{"wrong password", "miva_admin", "guess"},
		{"both wrong", "admin", "guess"},
		{"username case matters", "MIVA_ADMIN", "s3cret"},
		{"empty username", "", "s3cret"},
		{"empty password", "miva_admin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			}, "127.0.0.1", "test-agent")

			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLoginIssuesSessionToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "miva_admin",
		Password: "s3cret",
	}, "127.0.0.1", "test-agent")

	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "miva_admin", res.Username)
	assert.Equal(t, 60, res.ExpiresIn)

	// a second login with the same pair also succeeds
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "miva_admin",
		Password: "s3cret",
	}, "127.0.0.1", "test-agent")
	assert.NoError(t, err)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, sessions := newTestAuthService(t)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "miva_admin",
		Password: "s3cret",
	}, "127.0.0.1", "test-agent")
	assert.NoError(t, err)

	claims, err := serverutils.ParseSessionToken(res.AccessToken)
	assert.NoError(t, err)
	sessionID, _ := claims["session_id"].(string)
	assert.NotEmpty(t, sessionID)

	assert.NoError(t, svc.Logout(context.Background(), sessionID))
	_, found := sessions.Get(sessionID)
	assert.False(t, found)

	// second logout for the same session is a no-op
	assert.NoError(t, svc.Logout(context.Background(), sessionID))
}

func TestCredentialCheckerUnconfiguredDeniesEverything(t *testing.T) {
	checker := NewEnvCredentialChecker(config.AuthConfig{Username: "miva_admin"})

	assert.False(t, checker.Check("miva_admin", ""))
	assert.False(t, checker.Check("miva_admin", "anything"))
}
