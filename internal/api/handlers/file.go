package handlers

import (
	"net/http"

	"conservation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler handles HTTP requests for file references
type FileHandler struct {
	fileService *service.FileService
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService *service.FileService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// CreateFile handles POST /files
// @Summary Register an uploaded file
// @Description Register a file reference against its owning project
// @Tags files
// @Accept json
// @Produce json
// @Param file body service.CreateFileRequest true "File data"
// @Success 201 {object} models.File "Successfully registered file"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Project or uploader not found"
// @Security BearerAuth
// @Router /files [post]
func (h *FileHandler) CreateFile(c *gin.Context) {
	var req service.CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := h.fileService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, file)
}

// GetFile handles GET /files/:id
// @Summary Get a file reference by ID
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} models.File "File details"
// @Failure 400 {object} map[string]interface{} "Invalid file ID"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /files/{id} [get]
func (h *FileHandler) GetFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file ID"})
		return
	}

	file, err := h.fileService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, file)
}
