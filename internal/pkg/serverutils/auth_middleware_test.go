package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"miva-analytics-be/internal/repository/memory"
	"miva-analytics-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func mintToken(t *testing.T, secret, sessionId string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"session_id": sessionId,
		"username":   "miva_admin",
		"role":       "operator",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware(t *testing.T) {
	secret := "middleware-test-secret"
	t.Setenv("JWT_SECRET", secret)

	sessions := memory.NewSessionRepository(time.Hour)

	app := fiber.New()
	app.Get("/guarded", NewAuthMiddleware(sessions), func(ctx *fiber.Ctx) error {
		username, _ := ctx.Locals("username").(string)
		return ctx.JSON(SuccessResponse(200, "OK", fiber.Map{"username": username}))
	})

	doGet := func(t *testing.T, authHeader string) (int, string) {
		t.Helper()
		req := httptest.NewRequest("GET", "/guarded", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		var body struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		return resp.StatusCode, body.Message
	}

	t.Run("missing token rejected", func(t *testing.T) {
		status, message := doGet(t, "")
		assert.Equal(t, 401, status)
		assert.Equal(t, "Missing token", message)
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		status, message := doGet(t, "Bearer not-a-jwt")
		assert.Equal(t, 401, status)
		assert.Equal(t, "Invalid token", message)
	})

	t.Run("token signed with wrong secret rejected", func(t *testing.T) {
		token := mintToken(t, "some-other-secret", uuid.NewString())
		status, _ := doGet(t, "Bearer "+token)
		assert.Equal(t, 401, status)
	})

	t.Run("valid token without live session rejected", func(t *testing.T) {
		// The token itself verifies, but the server-side session is gone,
		// which is exactly the state a logout leaves behind.
		token := mintToken(t, secret, uuid.NewString())
		status, message := doGet(t, "Bearer "+token)
		assert.Equal(t, 401, status)
		assert.Equal(t, "Session expired", message)
	})

	t.Run("live session passes through", func(t *testing.T) {
		sessionId := uuid.NewString()
		sessions.Save(&store.Session{
			ID:        sessionId,
			Username:  "miva_admin",
			CreatedAt: time.Now(),
		})

		token := mintToken(t, secret, sessionId)
		req := httptest.NewRequest("GET", "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Data struct {
				Username string `json:"username"`
			} `json:"data"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "miva_admin", body.Data.Username)
	})

	t.Run("deleted session rejected on next request", func(t *testing.T) {
		sessionId := uuid.NewString()
		sessions.Save(&store.Session{ID: sessionId, Username: "miva_admin", CreatedAt: time.Now()})
		token := mintToken(t, secret, sessionId)

		status, _ := doGet(t, "Bearer "+token)
		assert.Equal(t, 200, status)

		sessions.Delete(sessionId)
		status, message := doGet(t, "Bearer "+token)
		assert.Equal(t, 401, status)
		assert.Equal(t, "Session expired", message)
	})
}
