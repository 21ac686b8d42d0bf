package movies

import (
	"errors"

	"movie-manager/core/catalog"
	"movie-manager/core/logger"
	"movie-manager/core/remote"
	"movie-manager/core/utils"
	"movie-manager/feature/movies/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for movies.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateRequest is the body of a create request.
type CreateRequest struct {
	Title string `json:"title"`
}

// WatchedRequest is the body of a watched toggle request.
type WatchedRequest struct {
	HasWatched *bool `json:"hasWatched"`
}

// RegisterRoutes registers the movie routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/movies")
	group.Get("/", h.HandleListMovies)
	group.Post("/", h.HandleCreateMovie)
	group.Get("/search", h.HandleSearch)
	group.Post("/reconcile", h.HandleReconcile)
	group.Post("/sync", h.HandleSync)
	group.Get("/:identifier", h.HandleGetMovie)
	group.Patch("/:identifier", h.HandleSetWatched)
	group.Delete("/:identifier", h.HandleDeleteMovie)
}

// HandleListMovies returns every stored movie.
// @Summary List Movies
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /movies [get]
func (h *Handler) HandleListMovies(c *fiber.Ctx) error {
	movies, err := h.service.ListMovies(c.UserContext())
	if err != nil {
		return h.fail(c, "List movies failed", err)
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return c.JSON(movies)
}

// HandleGetMovie returns one movie.
// @Summary Get Movie
// @Tags movies
// @Produce json
// @Param identifier path string true "Movie identifier (UUID)"
// @Success 200 {object} models.Movie
// @Failure 400 {object} map[string]string "Invalid identifier"
// @Failure 404 {object} map[string]string "Not found"
// @Router /movies/{identifier} [get]
func (h *Handler) HandleGetMovie(c *fiber.Ctx) error {
	movie, err := h.service.GetMovie(c.UserContext(), c.Params("identifier"))
	if err != nil {
		return h.fail(c, "Get movie failed", err)
	}
	return c.JSON(movie)
}

// HandleCreateMovie saves a new movie.
// @Summary Create Movie
// @Description Saves a movie locally and mirrors it to the remote store in the background.
// @Tags movies
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Movie"
// @Success 201 {object} models.Movie
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /movies [post]
func (h *Handler) HandleCreateMovie(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	movie, err := h.service.CreateMovie(c.UserContext(), req.Title, nil)
	if err != nil {
		return h.fail(c, "Create movie failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(movie)
}

// HandleSetWatched toggles the watched flag of a movie.
// @Summary Set Watched
// @Tags movies
// @Accept json
// @Produce json
// @Param identifier path string true "Movie identifier (UUID)"
// @Param request body WatchedRequest true "Watched flag"
// @Success 200 {object} models.Movie
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not found"
// @Router /movies/{identifier} [patch]
func (h *Handler) HandleSetWatched(c *fiber.Ctx) error {
	var req WatchedRequest
	if err := c.BodyParser(&req); err != nil || req.HasWatched == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "hasWatched is required"})
	}

	movie, err := h.service.SetWatched(c.UserContext(), c.Params("identifier"), *req.HasWatched, nil)
	if err != nil {
		return h.fail(c, "Set watched failed", err)
	}
	return c.JSON(movie)
}

// HandleDeleteMovie deletes a movie.
// @Summary Delete Movie
// @Tags movies
// @Param identifier path string true "Movie identifier (UUID)"
// @Success 204
// @Failure 404 {object} map[string]string "Not found"
// @Router /movies/{identifier} [delete]
func (h *Handler) HandleDeleteMovie(c *fiber.Ctx) error {
	if err := h.service.DeleteMovie(c.UserContext(), c.Params("identifier"), nil); err != nil {
		return h.fail(c, "Delete movie failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSearch searches the catalog.
// @Summary Search Catalog
// @Tags movies
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {array} models.MovieRepresentation
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Catalog error"
// @Router /movies/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	results, err := h.service.Search(c.UserContext(), c.Query("query"))
	if err != nil {
		return h.fail(c, "Search failed", err)
	}
	return c.JSON(results)
}

// HandleReconcile merges a batch of representations into the store.
// @Summary Reconcile Movies
// @Description Updates matched movies and creates unmatched ones from a batch of representations.
// @Tags movies
// @Accept json
// @Produce json
// @Param dry_run query boolean false "Only build the plan"
// @Param request body []models.MovieRepresentation true "Representations"
// @Success 200 {object} Result
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /movies/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	var reps []models.MovieRepresentation
	if err := c.BodyParser(&reps); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.Reconcile(c.UserContext(), reps, utils.ToBool(c.Query("dry_run")))
	if err != nil {
		return h.fail(c, "Reconcile failed", err)
	}
	return c.JSON(result)
}

// HandleSync reconciles the remote collection into the store.
// @Summary Sync From Remote
// @Tags movies
// @Produce json
// @Param dry_run query boolean false "Only build the plan"
// @Success 200 {object} Result
// @Failure 502 {object} map[string]string "Remote error"
// @Router /movies/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	result, err := h.service.SyncFromRemote(c.UserContext(), utils.ToBool(c.Query("dry_run")))
	if err != nil {
		return h.fail(c, "Sync failed", err)
	}
	return c.JSON(result)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrInvalidIdentifier),
		errors.Is(err, catalog.ErrEmptyTerm):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, catalog.ErrNotConfigured):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, catalog.ErrUnexpectedCode),
		errors.Is(err, catalog.ErrEmptyResponse),
		errors.Is(err, remote.ErrUnexpectedCode):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
