package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"miva-analytics-be/internal/dto"
	"miva-analytics-be/internal/pkg/serverutils"
	"miva-analytics-be/internal/service"
	"miva-analytics-be/pkg/export"
)

type ITableController interface {
	RegisterRoutes(r fiber.Router)
	ListTables(ctx *fiber.Ctx) error
	GetTableData(ctx *fiber.Ctx) error
	GetTableRow(ctx *fiber.Ctx) error
	ExportTable(ctx *fiber.Ctx) error
	EmailReport(ctx *fiber.Ctx) error
}

type tableController struct {
	service        service.ITableService
	authMiddleware fiber.Handler
}

func NewTableController(service service.ITableService, authMiddleware fiber.Handler) ITableController {
	return &tableController{
		service:        service,
		authMiddleware: authMiddleware,
	}
}

func (c *tableController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tables", c.authMiddleware)
	h.Get("/", c.ListTables)
	h.Get("/:name", c.GetTableData)
	h.Get("/:name/export", c.ExportTable)
	h.Get("/:name/:id", c.GetTableRow)

	reports := r.Group("/reports", c.authMiddleware)
	reports.Post("/email", c.EmailReport)
}

func (c *tableController) ListTables(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse(200, "Tables retrieved", c.service.ListTables()))
}

func (c *tableController) GetTableData(ctx *fiber.Ctx) error {
	table := ctx.Params("name")

	var req dto.TableDataRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}

	res, err := c.service.GetTableData(ctx.Context(), table, &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTable) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, fmt.Sprintf("Unknown table: %s", table)))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Table data retrieved", res))
}

func (c *tableController) GetTableRow(ctx *fiber.Ctx) error {
	table := ctx.Params("name")
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid record ID"))
	}

	row, err := c.service.GetTableRow(ctx.Context(), table, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownTable):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, fmt.Sprintf("Unknown table: %s", table)))
		case errors.Is(err, service.ErrRowNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Record not found"))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Record retrieved", row))
}

func (c *tableController) ExportTable(ctx *fiber.Ctx) error {
	table := ctx.Params("name")

	t, err := c.service.ExportTable(ctx.Context(), table)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTable) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, fmt.Sprintf("Unknown table: %s", table)))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	csvData, err := t.CSV()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	filename := export.Filename(table, time.Now())
	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Send(csvData)
}

func (c *tableController) EmailReport(ctx *fiber.Ctx) error {
	var req dto.EmailReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.EmailReport(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTable) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, fmt.Sprintf("Unknown table: %s", req.Table)))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(200, "Report sent", res))
}
