package backup

import (
	"errors"

	"movie-manager/core/logger"
	"movie-manager/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for backups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the backup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/backups")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleExport)
	group.Post("/import", h.HandleImport)
	group.Delete("/", h.HandleDelete)
}

// HandleExport writes a new backup.
// @Summary Export Backup
// @Description Writes every stored movie to a new JSON backup in the storage bucket.
// @Tags backups
// @Produce json
// @Success 201 {object} Info
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backups [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	info, err := h.service.Export(c.UserContext())
	if err != nil {
		return h.fail(c, "Backup export failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleList lists backups, newest first.
// @Summary List Backups
// @Tags backups
// @Produce json
// @Success 200 {array} Info
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backups [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	backups, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, "Backup list failed", err)
	}
	return c.JSON(backups)
}

// HandleImport restores a backup through the reconciler.
// @Summary Import Backup
// @Tags backups
// @Produce json
// @Param object query string true "Backup object name"
// @Param dry_run query boolean false "Only build the plan"
// @Success 200 {object} movies.Result
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not found"
// @Router /backups/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	result, err := h.service.Import(c.UserContext(), c.Query("object"), utils.ToBool(c.Query("dry_run")))
	if err != nil {
		return h.fail(c, "Backup import failed", err)
	}
	return c.JSON(result)
}

// HandleDelete removes a backup.
// @Summary Delete Backup
// @Tags backups
// @Param object query string true "Backup object name"
// @Success 204
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /backups [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Query("object")); err != nil {
		return h.fail(c, "Backup delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidObject):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Error(msg, zap.Int("status", status), zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
