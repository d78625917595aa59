package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"miva-analytics-be/internal/dto"
	"miva-analytics-be/internal/pkg/serverutils"
	"miva-analytics-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service        service.IAuthService
	authMiddleware fiber.Handler
}

func NewAuthController(service service.IAuthService, authMiddleware fiber.Handler) IAuthController {
	return &authController{
		service:        service,
		authMiddleware: authMiddleware,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", c.authMiddleware, c.Logout)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Login(ctx.Context(), &req, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid username or password"))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse(200, "Login successful", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	sessionID, _ := ctx.Locals("session_id").(string)

	if err := c.service.Logout(ctx.Context(), sessionID); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse(200, "Logged out", nil))
}
