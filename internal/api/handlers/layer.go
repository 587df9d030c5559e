package handlers

import (
	"net/http"

	"conservation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LayerHandler handles HTTP requests for the project layer catalog
type LayerHandler struct {
	layerService *service.LayerService
}

// NewLayerHandler creates a new layer handler
func NewLayerHandler(layerService *service.LayerService) *LayerHandler {
	return &LayerHandler{
		layerService: layerService,
	}
}

// CreateLayer handles POST /layers
// @Summary Add a layer to a project's catalog
// @Tags layers
// @Accept json
// @Produce json
// @Param layer body service.CreateLayerRequest true "Layer data"
// @Success 201 {object} models.ProjectLayer "Successfully created layer"
// @Failure 400 {object} map[string]interface{} "Invalid request body or legend metadata"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 422 {object} map[string]interface{} "File belongs to a different project"
// @Security BearerAuth
// @Router /layers [post]
func (h *LayerHandler) CreateLayer(c *gin.Context) {
	var req service.CreateLayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	layer, err := h.layerService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, layer)
}

// GetLayer handles GET /layers/:id
// @Summary Get a project layer by ID
// @Tags layers
// @Produce json
// @Param id path string true "Layer ID"
// @Success 200 {object} models.ProjectLayer "Layer details"
// @Failure 400 {object} map[string]interface{} "Invalid layer ID"
// @Failure 404 {object} map[string]interface{} "Layer not found"
// @Router /layers/{id} [get]
func (h *LayerHandler) GetLayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid layer ID"})
		return
	}

	layer, err := h.layerService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, layer)
}

// ListProjectLayers handles GET /projects/:id/layers
// @Summary List a project's layer catalog
// @Description Returns layers sorted by display order
// @Tags layers
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{} "Ordered layers"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id}/layers [get]
func (h *LayerHandler) ListProjectLayers(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	layers, err := h.layerService.ListByProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"layers": layers})
}
