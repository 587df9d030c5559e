package handlers

import (
	"net/http"

	"conservation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SolutionHandler handles HTTP requests for solutions
type SolutionHandler struct {
	solutionService *service.SolutionService
}

// NewSolutionHandler creates a new solution handler
func NewSolutionHandler(solutionService *service.SolutionService) *SolutionHandler {
	return &SolutionHandler{
		solutionService: solutionService,
	}
}

// CreateSolution handles POST /solutions
// @Summary Create a solution
// @Description Creates a solution with its membership sets and theme overrides in one atomic operation
// @Tags solutions
// @Accept json
// @Produce json
// @Param solution body service.CreateSolutionRequest true "Solution data"
// @Success 201 {object} models.Solution "Successfully created solution"
// @Failure 400 {object} map[string]interface{} "Invalid request body or duplicate theme override"
// @Failure 404 {object} map[string]interface{} "Project or author not found"
// @Failure 409 {object} map[string]interface{} "Solution already exists"
// @Failure 422 {object} map[string]interface{} "Referenced layer invalid for its position"
// @Security BearerAuth
// @Router /solutions [post]
func (h *SolutionHandler) CreateSolution(c *gin.Context) {
	var req service.CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solution, err := h.solutionService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, solution)
}

// GetSolution handles GET /solutions/:id
// @Summary Get a solution by ID
// @Description Returns the solution with its theme overrides and membership sets
// @Tags solutions
// @Produce json
// @Param id path string true "Solution ID"
// @Success 200 {object} models.Solution "Solution details"
// @Failure 400 {object} map[string]interface{} "Invalid solution ID"
// @Failure 404 {object} map[string]interface{} "Solution not found"
// @Router /solutions/{id} [get]
func (h *SolutionHandler) GetSolution(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid solution ID"})
		return
	}

	solution, err := h.solutionService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, solution)
}

// ListProjectSolutions handles GET /projects/:id/solutions
// @Summary List a project's solutions
// @Tags solutions
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{} "Solutions with overrides and memberships"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id}/solutions [get]
func (h *SolutionHandler) ListProjectSolutions(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	solutions, err := h.solutionService.ListByProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"solutions": solutions})
}

// ListSolutionLayers handles GET /solutions/:id/layers
// @Summary List a solution's theme overrides
// @Tags solutions
// @Produce json
// @Param id path string true "Solution ID"
// @Success 200 {object} map[string]interface{} "Theme overrides"
// @Failure 400 {object} map[string]interface{} "Invalid solution ID"
// @Failure 404 {object} map[string]interface{} "Solution not found"
// @Router /solutions/{id}/layers [get]
func (h *SolutionHandler) ListSolutionLayers(c *gin.Context) {
	solutionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid solution ID"})
		return
	}

	layers, err := h.solutionService.ListSolutionLayers(solutionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"layers": layers})
}

// CreateSolutionLayer handles POST /solutions/:id/layers
// @Summary Add a theme override to a solution
// @Tags solutions
// @Accept json
// @Produce json
// @Param id path string true "Solution ID"
// @Param body body object{project_layer_id=string,goal=number} true "Theme override"
// @Success 201 {object} models.SolutionLayer "Successfully created override"
// @Failure 400 {object} map[string]interface{} "Invalid request or goal out of range"
// @Failure 404 {object} map[string]interface{} "Solution not found"
// @Failure 409 {object} map[string]interface{} "Override already exists for this pairing"
// @Failure 422 {object} map[string]interface{} "Layer is not a theme layer of this project"
// @Security BearerAuth
// @Router /solutions/{id}/layers [post]
func (h *SolutionHandler) CreateSolutionLayer(c *gin.Context) {
	solutionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid solution ID"})
		return
	}

	var req struct {
		ProjectLayerID uuid.UUID `json:"project_layer_id" binding:"required"`
		Goal           *float64  `json:"goal,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	layer, err := h.solutionService.CreateSolutionLayer(solutionID, req.ProjectLayerID, req.Goal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, layer)
}

// ReplaceMembership handles PUT /solutions/:id/memberships/:set
// @Summary Replace a membership set wholesale
// @Description Overwrites the named set (weights, includes or excludes) with set semantics
// @Tags solutions
// @Accept json
// @Produce json
// @Param id path string true "Solution ID"
// @Param set path string true "Set name (weights, includes, excludes)"
// @Param body body object{layer_ids=[]string} true "Layer ids"
// @Success 200 {object} map[string]interface{} "Membership replaced"
// @Failure 400 {object} map[string]interface{} "Invalid request or set name"
// @Failure 404 {object} map[string]interface{} "Solution not found"
// @Failure 422 {object} map[string]interface{} "Layer invalid for this set"
// @Security BearerAuth
// @Router /solutions/{id}/memberships/{set} [put]
func (h *SolutionHandler) ReplaceMembership(c *gin.Context) {
	solutionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid solution ID"})
		return
	}
	set := service.MembershipSet(c.Param("set"))

	var req struct {
		LayerIDs []uuid.UUID `json:"layer_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.solutionService.ReplaceMembership(solutionID, set, req.LayerIDs); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"replaced": true})
}
