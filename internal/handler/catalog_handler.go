package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Anikethb04/Project-IMDB/internal/service"
)

// CatalogHandler handles HTTP requests for catalog lists, search and details.
type CatalogHandler struct {
	svc *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *CatalogHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "tmdb-browser",
	})
}

// Movies returns the mixed popular / top-rated / trending list.
// @Summary Mixed catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} models.CatalogItem
// @Failure 500 {object} ErrorResponse
// @Router /api/movies [get]
func (h *CatalogHandler) Movies(c fiber.Ctx) error {
	items, err := h.svc.MixedCatalog(c.Context())
	if err != nil {
		slog.Error("failed to fetch movies", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch movies",
		})
	}
	return c.JSON(items)
}

// TrendingRegional returns India then US discover results.
// @Summary Regional trending
// @Tags catalog
// @Produce json
// @Success 200 {array} models.CatalogItem
// @Failure 500 {object} ErrorResponse
// @Router /api/trending-regional [get]
func (h *CatalogHandler) TrendingRegional(c fiber.Ctx) error {
	items, err := h.svc.RegionalTrending(c.Context())
	if err != nil {
		slog.Error("failed to fetch regional trending", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch trending movies",
		})
	}
	return c.JSON(items)
}

// Search runs a multi search over movies and shows.
// @Summary Search
// @Tags catalog
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} models.CatalogItem
// @Failure 500 {object} ErrorResponse
// @Router /api/search [get]
func (h *CatalogHandler) Search(c fiber.Ctx) error {
	q := c.Query("q")
	items, err := h.svc.Search(c.Context(), q)
	if err != nil {
		slog.Error("search failed", "query", q, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to search movies",
		})
	}
	return c.JSON(items)
}

// MovieDetail returns details, credits and reviews for one title.
// @Summary Title detail
// @Tags catalog
// @Produce json
// @Param id path string true "TMDB id"
// @Param type query string false "movie or tv" default(movie)
// @Success 200 {object} models.DetailRecord
// @Failure 500 {object} ErrorResponse
// @Router /api/movie/{id} [get]
func (h *CatalogHandler) MovieDetail(c fiber.Ctx) error {
	id := c.Params("id")
	mediaType := c.Query("type", "movie")

	detail, err := h.svc.Detail(c.Context(), id, mediaType)
	if err != nil {
		slog.Error("failed to fetch detail", "id", id, "type", mediaType, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch movie details",
		})
	}
	return c.JSON(detail)
}

// Register mounts the catalog routes on r.
func (h *CatalogHandler) Register(r fiber.Router) {
	r.Get("/health", h.Health)

	api := r.Group("/api")
	api.Get("/movies", h.Movies)
	api.Get("/trending-regional", h.TrendingRegional)
	api.Get("/search", h.Search)
	api.Get("/movie/:id", h.MovieDetail)
}
