package interview

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/llm"
)

func setupRouter(t *testing.T, client llm.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHandler(NewService(client)).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestInterviewQuestionsEndpoint(t *testing.T) {
	router := setupRouter(t, llm.Disabled{})

	resp := postJSON(t, router, "/api/v1/interview-questions", map[string]string{
		"resume_text": "Senior engineer with Go experience",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var decoded struct {
		Questions []string `json:"questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(decoded.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(decoded.Questions))
	}
}

func TestInterviewQuestionsRequiresResumeText(t *testing.T) {
	router := setupRouter(t, llm.Disabled{})

	resp := postJSON(t, router, "/api/v1/interview-questions", map[string]string{
		"resume_text": "   ",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestInterviewQuestionsRejectsBadBody(t *testing.T) {
	router := setupRouter(t, llm.Disabled{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interview-questions", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestInterviewFeedbackEndpoint(t *testing.T) {
	router := setupRouter(t, llm.Disabled{})

	resp := postJSON(t, router, "/api/v1/interview-feedback", map[string]string{
		"question": "Tell me about a conflict.",
		"answer":   "I talked it through with my teammate.",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var decoded Feedback
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if decoded.Score != 50 {
		t.Fatalf("expected rule-based score 50, got %d", decoded.Score)
	}
	if decoded.StarBreakdown.Situation != 5 {
		t.Fatalf("unexpected breakdown: %+v", decoded.StarBreakdown)
	}
}

func TestInterviewFeedbackRequiresBothFields(t *testing.T) {
	router := setupRouter(t, llm.Disabled{})

	cases := []map[string]string{
		{"question": "Only question"},
		{"answer": "Only answer"},
		{},
	}
	for _, payload := range cases {
		resp := postJSON(t, router, "/api/v1/interview-feedback", payload)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 for %v, got %d", payload, resp.Code)
		}
	}
}
