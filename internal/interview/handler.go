package interview

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the interview service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interview-questions", h.questions)
	rg.POST("/interview-feedback", h.feedback)
}

type questionsRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

func (h *Handler) questions(c *gin.Context) {
	var req questionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume_text is required", nil)
		return
	}

	questions := h.Svc.GenerateQuestions(c.Request.Context(), req.ResumeText, req.JobDescription)
	respond.OK(c, gin.H{"questions": questions})
}

type feedbackRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (h *Handler) feedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "both question and answer are required", nil)
		return
	}

	respond.OK(c, h.Svc.EvaluateAnswer(c.Request.Context(), req.Question, req.Answer))
}
