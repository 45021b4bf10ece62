package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms-admin/internal/domain"
	"cms-admin/internal/service"
)

// WorkHandler handles portfolio work HTTP requests.
type WorkHandler struct {
	workService service.WorkServiceInterface
}

// NewWorkHandler creates a new WorkHandler.
func NewWorkHandler(workService service.WorkServiceInterface) *WorkHandler {
	return &WorkHandler{
		workService: workService,
	}
}

// CreateWork handles POST /api/v1/works
func (h *WorkHandler) CreateWork(c *gin.Context) {
	var in domain.WorkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	work, err := h.workService.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, work)
}

// ListWorks handles GET /api/v1/works
func (h *WorkHandler) ListWorks(c *gin.Context) {
	filter := domain.ListFilter{Status: domain.Status(c.Query("status"))}

	works, err := h.workService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"works": works})
}

// GetWork handles GET /api/v1/works/:slug
func (h *WorkHandler) GetWork(c *gin.Context) {
	work, err := h.workService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// UpdateWork handles PUT /api/v1/works/:slug
func (h *WorkHandler) UpdateWork(c *gin.Context) {
	var patch domain.WorkPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	work, err := h.workService.Update(c.Request.Context(), c.Param("slug"), &patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// DeleteWork handles DELETE /api/v1/works/:slug
func (h *WorkHandler) DeleteWork(c *gin.Context) {
	if err := h.workService.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UploadWorkCover handles POST /api/v1/works/:slug/cover
func (h *WorkHandler) UploadWorkCover(c *gin.Context) {
	file, err := readFormFile(c, "cover")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	work, err := h.workService.UploadCover(c.Request.Context(), c.Param("slug"), file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// maxBlocksFormBytes bounds the whole blocks request body before parsing, so
// oversized uploads are refused instead of buffered. A full set of block
// images plus the JSON layout fits comfortably under it.
const maxBlocksFormBytes = domain.MaxBlockImages*service.MaxBlockImageSizeBytes + 1<<20

// SaveWorkBlocks handles PUT /api/v1/works/:slug/blocks
//
// The request is multipart: a "blocks" field carries the JSON block layout,
// and every slot bound to a new upload references a file part by its form
// field name.
func (h *WorkHandler) SaveWorkBlocks(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBlocksFormBytes)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form: " + err.Error()})
		return
	}

	var blocksJSON string
	if values := form.Value["blocks"]; len(values) > 0 {
		blocksJSON = values[0]
	}
	if blocksJSON == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "blocks field is required"})
		return
	}

	var blocks []domain.BlockInput
	if err := json.Unmarshal([]byte(blocksJSON), &blocks); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blocks payload: " + err.Error()})
		return
	}

	files := make(map[string]service.FileUpload, len(form.File))
	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		header := headers[0]

		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file " + field})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file " + field})
			return
		}

		files[field] = service.FileUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	work, err := h.workService.SaveContentBlocks(c.Request.Context(), c.Param("slug"), blocks, files)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// RenameWorkRequest is the body for POST /api/v1/works/:slug/rename.
type RenameWorkRequest struct {
	NewSlug string `json:"newSlug"`
}

// RenameWork handles POST /api/v1/works/:slug/rename
func (h *WorkHandler) RenameWork(c *gin.Context) {
	var req RenameWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	work, err := h.workService.Rename(c.Request.Context(), c.Param("slug"), req.NewSlug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// ListWorkTags handles GET /api/v1/tags
func (h *WorkHandler) ListWorkTags(c *gin.Context) {
	tags, err := h.workService.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
