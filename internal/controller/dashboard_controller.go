package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"miva-analytics-be/internal/pkg/serverutils"
	"miva-analytics-be/internal/service"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetOverview(ctx *fiber.Ctx) error
	GetFeedbackStats(ctx *fiber.Ctx) error
	GetSessionStats(ctx *fiber.Ctx) error
	GetOtpStats(ctx *fiber.Ctx) error
	RefreshStats(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service        service.IReportService
	authMiddleware fiber.Handler
}

func NewDashboardController(service service.IReportService, authMiddleware fiber.Handler) IDashboardController {
	return &dashboardController{
		service:        service,
		authMiddleware: authMiddleware,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard", c.authMiddleware)
	h.Get("/overview", c.GetOverview)
	h.Get("/feedback", c.GetFeedbackStats)
	h.Get("/sessions", c.GetSessionStats)
	h.Get("/otp", c.GetOtpStats)
	h.Post("/refresh", c.RefreshStats)

	logs := r.Group("/logs", c.authMiddleware)
	logs.Get("/", c.GetLogs)
	logs.Get("/:id", c.GetLogDetail)
}

func (c *dashboardController) GetOverview(ctx *fiber.Ctx) error {
	stats, err := c.service.GetOverview(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Overview stats retrieved", stats))
}

func (c *dashboardController) GetFeedbackStats(ctx *fiber.Ctx) error {
	stats, err := c.service.GetFeedbackStats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Feedback stats retrieved", stats))
}

func (c *dashboardController) GetSessionStats(ctx *fiber.Ctx) error {
	stats, err := c.service.GetSessionStats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Session stats retrieved", stats))
}

func (c *dashboardController) GetOtpStats(ctx *fiber.Ctx) error {
	stats, err := c.service.GetOtpStats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "OTP stats retrieved", stats))
}

func (c *dashboardController) RefreshStats(ctx *fiber.Ctx) error {
	c.service.RefreshStats(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse(200, "Stats cache cleared", nil))
}

func (c *dashboardController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))
	level := ctx.Query("level", "")

	logs, err := c.service.GetLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Logs retrieved", logs))
}

func (c *dashboardController) GetLogDetail(ctx *fiber.Ctx) error {
	logId := ctx.Params("id")

	detail, err := c.service.GetLogDetail(ctx.Context(), logId)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Log entry not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Log detail retrieved", detail))
}
