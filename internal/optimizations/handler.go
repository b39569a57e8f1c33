package optimizations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/documents"
	"resume-optimizer/internal/extract"
	"resume-optimizer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the optimizations service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches optimization routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:id/optimize", h.optimize)
	rg.GET("/optimizations/:id", h.get)
	rg.GET("/optimizations/:id/download", h.download)
}

type optimizeRequest struct {
	JobDescription string `json:"jobDescription"`
	Region         string `json:"region"`
}

func (h *Handler) optimize(c *gin.Context) {
	documentID := c.Param("id")
	if documentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document id is required", nil)
		return
	}

	var req optimizeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	c.Set("documentId", documentID)

	opt, err := h.Svc.Optimize(c.Request.Context(), documentID, req.JobDescription, req.Region)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, extract.ErrUnsupportedFormat):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_format", "only PDF and DOCX files are supported", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to optimize document", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"optimizationId": opt.ID,
		"documentId":     opt.DocumentID,
		"profile":        opt.Profile,
		"downloadUrl":    "/api/v1/optimizations/" + opt.ID + "/download",
		"createdAt":      opt.CreatedAt,
	})
}

func (h *Handler) get(c *gin.Context) {
	opt, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "optimization not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch optimization", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, opt)
}

func (h *Handler) download(c *gin.Context) {
	opt, data, err := h.Svc.OpenDocx(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "optimization not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to download optimization", nil)
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="optimized_resume_`+opt.ID+`.docx"`)
	c.Data(http.StatusOK, mimeDOCX, data)
}
