package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms-admin/internal/domain"
	"cms-admin/internal/service"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// CreateArticle handles POST /api/v1/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var in domain.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// ListArticles handles GET /api/v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter := domain.ListFilter{Status: domain.Status(c.Query("status"))}

	articles, err := h.articleService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /api/v1/articles/:slug
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// UpdateArticle handles PUT /api/v1/articles/:slug
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var patch domain.ArticlePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), c.Param("slug"), &patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /api/v1/articles/:slug
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UploadArticleCover handles POST /api/v1/articles/:slug/cover
func (h *ArticleHandler) UploadArticleCover(c *gin.Context) {
	file, err := readFormFile(c, "cover")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.UploadCover(c.Request.Context(), c.Param("slug"), file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// maxCoverFormBytes bounds cover upload bodies before parsing, leaving room
// for multipart framing on top of the largest accepted image.
const maxCoverFormBytes = service.MaxCoverSizeBytes + 1<<20

// readFormFile loads a single multipart file field into memory. The request
// body is bounded before parsing so oversized uploads fail without being
// buffered.
func readFormFile(c *gin.Context, field string) (service.FileUpload, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCoverFormBytes)

	header, err := c.FormFile(field)
	if err != nil {
		return service.FileUpload{}, domain.ValidationError("%s file is required", field)
	}

	f, err := header.Open()
	if err != nil {
		return service.FileUpload{}, domain.ValidationError("could not read %s file", field)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return service.FileUpload{}, domain.ValidationError("could not read %s file", field)
	}

	return service.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
