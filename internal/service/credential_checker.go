package service

import (
	"crypto/subtle"
	"log"

	"miva-analytics-be/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker is the pluggable gate in front of the dashboard.
// The default implementation compares against one externally configured
// pair; swapping in a real identity provider later only means providing
// another implementation.
type CredentialChecker interface {
	Check(username, password string) bool
}

type envCredentialChecker struct {
	username     string
	passwordHash []byte
}

// NewEnvCredentialChecker builds a checker from APP_USERNAME and a bcrypt
// APP_PASSWORD_HASH. When only a plaintext APP_PASSWORD is configured
// (dev setups), it is hashed once at startup so the plaintext never sits
// in the checker. With neither set, every check fails.
func NewEnvCredentialChecker(cfg config.AuthConfig) CredentialChecker {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 && cfg.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err == nil {
			hash = h
		}
	}
	if len(hash) == 0 {
		log.Println("[WARN] No operator credential configured; all logins will be rejected")
	}
	return &envCredentialChecker{
		username:     cfg.Username,
		passwordHash: hash,
	}
}

func (c *envCredentialChecker) Check(username, password string) bool {
	if len(c.passwordHash) == 0 {
		return false
	}
	// Case-sensitive exact match on the username; constant-time to avoid
	// confirming which field was wrong via timing.
	userOk := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOk := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
	return userOk && passOk
}
