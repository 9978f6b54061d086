package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"groupahpdss/internal/apperr"
	"groupahpdss/internal/document"
)

// Handler adapts Service to gin routes.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler builds a Handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the solve module's routes under /api/v1 plus
// the top-level health check.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/solve", h.Solve)
		v1.GET("/solve/:key", h.GetSolve)
	}
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	respondSuccess(c, http.StatusOK, "service is healthy", gin.H{"status": "ok"})
}

// Solve godoc
// @Summary Run the group AHP / AEM-COM pipeline
// @Description Ingests a group model document, runs AHP + AEM-COM, and returns the rendered result document.
// @Tags solve
// @Accept json
// @Produce json
// @Param sensitivity query bool false "include the sensitivity report"
// @Param validation query bool false "include the validation report"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/solve [post]
func (h *Handler) Solve(c *gin.Context) {
	requestID := uuid.New().String()
	logger := h.logger.With(zap.String("request_id", requestID))

	body, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) == 0 {
		handleError(c, apperr.New(apperr.InputMalformed, "request body is empty"))
		return
	}

	opts := document.Options{
		IncludeSensitivity: c.Query("sensitivity") == "true",
		IncludeValidation:  c.Query("validation") != "false",
	}

	doc, key, err := h.service.Solve(c.Request.Context(), body, opts)
	if err != nil {
		logger.Error("solve failed", zap.Error(err))
		handleError(c, err)
		return
	}

	logger.Info("solve completed", zap.String("result_key", key))
	c.Header("X-Request-ID", requestID)
	c.Header("X-Result-Key", key)
	respondSuccess(c, http.StatusOK, "solve completed", doc)
}

// GetSolve godoc
// @Summary Re-serve a cached solve result
// @Tags solve
// @Produce json
// @Param key path string true "result cache key"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/solve/{key} [get]
func (h *Handler) GetSolve(c *gin.Context) {
	key := c.Param("key")

	doc, ok := h.service.Get(c.Request.Context(), key)
	if !ok {
		respondError(c, http.StatusNotFound, "no cached result for that key")
		return
	}

	respondSuccess(c, http.StatusOK, "cached result", doc)
}
