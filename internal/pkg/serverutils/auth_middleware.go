package serverutils

import (
	"os"

	"miva-analytics-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewAuthMiddleware guards every data route. A request passes only with a
// valid bearer token AND a live server-side session, so logout takes
// effect immediately and no query runs for an unauthenticated caller.
func NewAuthMiddleware(sessions *memory.SessionRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}
		tokenStr := authHeader[7:]

		claims, err := ParseSessionToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}

		sessionId, _ := claims["session_id"].(string)
		session, found := sessions.Get(sessionId)
		if !found {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Session expired"))
		}

		ctx.Locals("session_id", session.ID)
		ctx.Locals("username", session.Username)
		return ctx.Next()
	}
}

// ParseSessionToken validates an HS256 token and returns its claims.
// Shared with the websocket handler, which carries the token in a query
// parameter because browsers cannot set headers on websocket upgrades.
func ParseSessionToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret()), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenMalformed
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return secret
}
