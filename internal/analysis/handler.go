package analysis

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-insight/internal/extract"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
	"resume-insight/internal/shared/storage/object"
	"resume-insight/internal/shared/telemetry"
	"resume-insight/internal/skills"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc   *Service
	Repo  Repo
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, repo Repo, store object.ObjectStore) *Handler {
	return &Handler{Svc: svc, Repo: repo, Store: store}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/analyses", h.listAnalyses)
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	jobDescription := c.PostForm("job_description")

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	ctx := c.Request.Context()
	mimeType := fileHeader.Header.Get("Content-Type")
	text, err := extract.TextFromBytes(ctx, data, mimeType, fileHeader.Filename)
	if err != nil {
		metrics.IncAnalysisFailed()
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported document type; upload a PDF, DOCX, or plain-text resume", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", "could not extract text from the document", nil)
		}
		return
	}

	started := time.Now()
	result := h.Svc.Analyze(ctx, text, jobDescription)
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	metrics.IncAnalysisCompleted()

	foundSkills := skills.Extract(text)

	h.persist(c, fileHeader.Filename, data, text, jobDescription, result)

	respond.OK(c, gin.H{
		"full_text": text,
		"analysis": gin.H{
			"score":           result.TotalScore,
			"matching_skills": foundSkills,
			// Historical field name: carries the insight strings, not a
			// skill-gap list. Consumers depend on it.
			"missing_skills":  result.Insights,
			"resume_skills":   foundSkills,
			"section_scores":  result.SectionScores,
			"score_breakdown": result.ScoreBreakdown,
			"bullet_analysis": result.BulletAnalysis,
		},
	})
}

// persist stores the upload, the extracted text, and the history record.
// All of it is best-effort: a storage or repo failure is logged, never
// surfaced to the client.
func (h *Handler) persist(c *gin.Context, fileName string, data []byte, text, jobDescription string, result Result) {
	ctx := c.Request.Context()
	requestID := middleware.RequestIDFromContext(c)

	if h.Store != nil {
		key, _, _, err := h.Store.Save(ctx, fileName, bytes.NewReader(data))
		if err != nil {
			telemetry.Warn("analysis.store_upload_failed", map[string]any{"request_id": requestID, "error": err.Error()})
		} else if _, err := h.Store.SaveWithKey(ctx, key+".extracted.txt", "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
			telemetry.Warn("analysis.store_extracted_failed", map[string]any{"request_id": requestID, "error": err.Error()})
		}
	}

	if h.Repo != nil {
		rec := Record{
			ID:                uuid.NewString(),
			FileName:          fileName,
			HasJobDescription: jobDescription != "",
			TotalScore:        result.TotalScore,
			Breakdown:         result.ScoreBreakdown,
			Insights:          result.Insights,
			CreatedAt:         time.Now().UTC(),
		}
		if err := h.Repo.Create(ctx, rec); err != nil {
			telemetry.Warn("analysis.record_failed", map[string]any{"request_id": requestID, "error": err.Error()})
		}
	}
}

func (h *Handler) listAnalyses(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 100 {
		limit = 100
	}

	records, err := h.Repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	if records == nil {
		records = []Record{}
	}
	respond.OK(c, records)
}
