package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resume-insight/internal/llm"
	"resume-insight/internal/shared/metrics"
)

const resumeExcerptLimit = 2000

const questionsPromptTemplate = `Generate 5 interview questions based on the following resume.
If a Job Description is provided, tailor them to the role.

Resume Content:
%s

Job Description:
%s

Output strictly JSON object: { "questions": ["question 1", "question 2", ...] }`

const feedbackPromptTemplate = `Evaluate the following interview answer using the STRICT STAR method.
Question: %s
Answer: %s

Provide:
1. A breakdown score for each component (Situation, Task, Action, Result) out of 10.
2. An overall score (0-100).
3. A list of 3 specific feedback points.
4. An improved version of the answer.

Output Strictly JSON:
{
  "score": int,
  "star_breakdown": { "situation": int, "task": int, "action": int, "result": int },
  "feedback": [str],
  "improved_answer": str
}`

const coachSystemPrompt = "You are a helpful AI career coach."

// fallbackQuestions is returned whenever the provider is unavailable, fails,
// or yields an empty list.
var fallbackQuestions = []string{
	"Tell me about a time you used Python to solve a difficult problem.",
	"How do you handle conflict in a team setting?",
	"Describe your experience with React and state management.",
	"What is your approach to testing and ensuring code quality?",
	"Where do you see yourself in 5 years?",
}

// StarBreakdown scores the four STAR components, each 0-10.
type StarBreakdown struct {
	Situation int `json:"situation"`
	Task      int `json:"task"`
	Action    int `json:"action"`
	Result    int `json:"result"`
}

// Feedback is the evaluation of one interview answer.
type Feedback struct {
	Score          int           `json:"score"`
	StarBreakdown  StarBreakdown `json:"star_breakdown"`
	Feedback       []string      `json:"feedback"`
	ImprovedAnswer string        `json:"improved_answer"`
}

// Service implements the interview coaching flows on top of the generative
// provider, with deterministic fallbacks for every degraded path.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service.
func NewService(llmClient llm.Client) *Service {
	return &Service{LLM: llmClient}
}

// GenerateQuestions returns exactly 5 interview questions tailored to the
// resume and, when present, the job description.
func (s *Service) GenerateQuestions(ctx context.Context, resumeText, jobDescription string) []string {
	metrics.IncInterviewQuestions()

	questions := []string{}
	if s.LLM.Available() {
		excerpt := resumeText
		if len(excerpt) > resumeExcerptLimit {
			excerpt = excerpt[:resumeExcerptLimit]
		}
		jd := jobDescription
		if strings.TrimSpace(jd) == "" {
			jd = "N/A"
		}
		res := s.LLM.GenerateJSON(ctx, fmt.Sprintf(questionsPromptTemplate, excerpt, jd), coachSystemPrompt)
		questions = parseQuestions(res)
	}

	if len(questions) == 0 {
		metrics.IncLLMFallback()
		return append([]string(nil), fallbackQuestions...)
	}
	return questions
}

// parseQuestions accepts either a bare JSON array or an object with a
// "questions" array.
func parseQuestions(res llm.Result) []string {
	if !res.OK() {
		return nil
	}
	var bare []string
	if err := json.Unmarshal(res.Raw, &bare); err == nil {
		return bare
	}
	var wrapped struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal(res.Raw, &wrapped); err == nil {
		return wrapped.Questions
	}
	return nil
}

// EvaluateAnswer scores an interview answer under the STAR rubric. Without a
// provider it applies the word-count rule; with a provider, missing fields in
// the response default to documented placeholder values.
func (s *Service) EvaluateAnswer(ctx context.Context, question, answer string) Feedback {
	metrics.IncInterviewEvaluation()

	if !s.LLM.Available() {
		metrics.IncLLMFallback()
		return ruleBasedFeedback(answer)
	}

	res := s.LLM.GenerateJSON(ctx, fmt.Sprintf(feedbackPromptTemplate, question, answer), coachSystemPrompt)

	var parsed struct {
		Score          *int           `json:"score"`
		StarBreakdown  *StarBreakdown `json:"star_breakdown"`
		Feedback       []string       `json:"feedback"`
		ImprovedAnswer *string        `json:"improved_answer"`
	}
	if res.OK() {
		_ = json.Unmarshal(res.Raw, &parsed)
	}

	out := Feedback{
		Feedback:       []string{"Could not generate feedback."},
		ImprovedAnswer: "Could not generate improvement.",
	}
	if parsed.Score != nil {
		out.Score = *parsed.Score
	}
	if parsed.StarBreakdown != nil {
		out.StarBreakdown = *parsed.StarBreakdown
	}
	if len(parsed.Feedback) > 0 {
		out.Feedback = parsed.Feedback
	}
	if parsed.ImprovedAnswer != nil && *parsed.ImprovedAnswer != "" {
		out.ImprovedAnswer = *parsed.ImprovedAnswer
	}
	return out
}

// ruleBasedFeedback is the deterministic evaluation used when no provider is
// configured: short answers score 50 with flat 5s, longer answers 80 with
// flat 8s.
func ruleBasedFeedback(answer string) Feedback {
	wordCount := len(strings.Fields(answer))
	if wordCount < 20 {
		return Feedback{
			Score:          50,
			StarBreakdown:  StarBreakdown{Situation: 5, Task: 5, Action: 5, Result: 5},
			Feedback:       []string{"Your answer is a bit too short. Try to elaborate more using the STAR method."},
			ImprovedAnswer: "LLM service unavailable for improved answer generation.",
		}
	}
	return Feedback{
		Score:          80,
		StarBreakdown:  StarBreakdown{Situation: 8, Task: 8, Action: 8, Result: 8},
		Feedback:       []string{"Good length! You provided enough detail."},
		ImprovedAnswer: "LLM service unavailable for improved answer generation.",
	}
}
