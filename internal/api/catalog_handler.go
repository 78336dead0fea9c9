package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ironplan/workout-planner/internal/catalog"
)

// CatalogHandler serves the static exercise catalog that seeds the
// selection UI. The catalog never changes at runtime.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListExercises godoc
// @Summary List the exercise catalog
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.CatalogExercise "All predefined exercises"
// @Router /exercises [get]
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.All())
}
