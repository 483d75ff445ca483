package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ascend/internal/service"
)

// AssessmentHandler mantiene dependencias para endpoints de evaluaciones.
type AssessmentHandler struct {
	logger         *zap.Logger
	assessmentServ *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, assessmentServ *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		logger:         logger,
		assessmentServ: assessmentServ,
	}
}

// GetCatalog maneja GET /catalog. Publico: la UI lo necesita antes del login.
func (h *AssessmentHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.assessmentServ.Catalog()})
}

// SubmitAssessment maneja POST /assessments.
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Responses map[string]int `json:"responses" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	assessment, err := h.assessmentServ.SubmitAssessment(c.Request.Context(), claims.UserID, req.Responses)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoResponses),
			errors.Is(err, service.ErrInvalidResponse),
			errors.Is(err, service.ErrUnknownQuestion):
			c.JSON(http.StatusBadRequest, gin.H{"error": "please complete the assessment"})
			return
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		default:
			h.logger.Error("submit assessment failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit assessment"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"assessment": assessment})
}

// ListAssessments maneja GET /assessments.
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	assessments, err := h.assessmentServ.ListAssessments(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		h.logger.Error("list assessments failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list assessments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": assessments})
}

// LatestAssessment maneja GET /assessments/latest.
func (h *AssessmentHandler) LatestAssessment(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	assessment, err := h.assessmentServ.LatestAssessment(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return
		}
		h.logger.Error("latest assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessment": assessment})
}

// GetAssessment maneja GET /assessments/:id.
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	assessment, err := h.assessmentServ.GetAssessment(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return
		}
		h.logger.Error("get assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessment": assessment})
}

// GetPlan maneja GET /assessments/:id/plan.
func (h *AssessmentHandler) GetPlan(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	plan, err := h.assessmentServ.BuildPlan(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return
		}
		h.logger.Error("build plan failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
