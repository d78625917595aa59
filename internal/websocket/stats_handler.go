package websocket

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"miva-analytics-be/internal/pkg/logger"
	"miva-analytics-be/internal/pkg/serverutils"
	"miva-analytics-be/internal/repository/memory"
	"miva-analytics-be/internal/service"
)

const statsPushInterval = 10 * time.Second

// StatsHandler streams dashboard overview counts to connected operators.
type StatsHandler struct {
	reportService service.IReportService
	sessions      *memory.SessionRepository
	logger        logger.ILogger
}

func NewStatsHandler(reportService service.IReportService, sessions *memory.SessionRepository, log logger.ILogger) *StatsHandler {
	return &StatsHandler{
		reportService: reportService,
		sessions:      sessions,
		logger:        log,
	}
}

// ServeWs upgrades the connection after the same token check the REST
// middleware applies. Browsers cannot set headers on websocket handshakes,
// so the token arrives as a query param.
func (h *StatsHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing token"))
	}

	claims, err := serverutils.ParseSessionToken(tokenStr)
	if err != nil {
		h.logger.Warn("StatsHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Token missing session"))
	}
	if _, found := h.sessions.Get(sessionID); !found {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Session expired"))
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("StatsHandler", "Stats stream opened", map[string]interface{}{"session_id": sessionID})
		h.stream(conn, sessionID)
		h.logger.Info("StatsHandler", "Stats stream closed", map[string]interface{}{"session_id": sessionID})
	})(c)
}

func (h *StatsHandler) stream(conn *websocket.Conn, sessionID string) {
	ticker := time.NewTicker(statsPushInterval)
	defer ticker.Stop()
	defer conn.Close()

	// Reader goroutine: the client never sends data but the read pump
	// is what detects a closed peer.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if !h.push(conn) {
		return
	}
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if _, found := h.sessions.Get(sessionID); !found {
				return
			}
			if !h.push(conn) {
				return
			}
		}
	}
}

func (h *StatsHandler) push(conn *websocket.Conn) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := h.reportService.GetOverview(ctx)
	if err != nil {
		h.logger.Error("StatsHandler", "Failed to load overview stats", map[string]interface{}{"error": err.Error()})
		return true
	}
	if err := conn.WriteJSON(stats); err != nil {
		return false
	}
	return true
}
