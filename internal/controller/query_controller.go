package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"miva-analytics-be/internal/dto"
	"miva-analytics-be/internal/pkg/serverutils"
	"miva-analytics-be/internal/service"
	"miva-analytics-be/pkg/export"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router)
	Execute(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type queryController struct {
	service        service.IQueryService
	authMiddleware fiber.Handler
}

func NewQueryController(service service.IQueryService, authMiddleware fiber.Handler) IQueryController {
	return &queryController{
		service:        service,
		authMiddleware: authMiddleware,
	}
}

func (c *queryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/query", c.authMiddleware)
	h.Post("/", c.Execute)
	h.Post("/export", c.Export)
}

func (c *queryController) Execute(ctx *fiber.Ctx) error {
	res, handled := c.run(ctx)
	if handled {
		return nil
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Query executed", res))
}

// Export runs the same query path but streams the result as CSV.
func (c *queryController) Export(ctx *fiber.Ctx) error {
	res, handled := c.run(ctx)
	if handled {
		return nil
	}

	t := &export.Table{Columns: res.Columns, Rows: res.Rows}
	csvData, err := t.CSV()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	filename := export.Filename("query_result", time.Now())
	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Send(csvData)
}

// run parses and executes the query. When handled is true an error
// response has already been written.
func (c *queryController) run(ctx *fiber.Ctx) (res *dto.CustomQueryResponse, handled bool) {
	var req dto.CustomQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
		return nil, true
	}

	res, err := c.service.Execute(ctx.Context(), &req)
	if err != nil {
		var queryErr *service.QueryError
		switch {
		case errors.Is(err, service.ErrQueryEmpty), errors.Is(err, service.ErrQueryNotReadOnly):
			_ = ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		case errors.As(err, &queryErr):
			_ = ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, queryErr.Message))
		default:
			_ = ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
		return nil, true
	}
	return res, false
}
