package boss

import (
	"context"
	"fmt"
	"log"
	"strings"

	"skilledu/models"

	"github.com/tmc/langchaingo/llms"
)

const identityAnswer = "I am developed by SkillEdu team."

// HistorySaver persists a finished Q&A for a known user. Saving is a side
// effect of answering; its failure must never fail the request.
type HistorySaver interface {
	SaveResponse(userID int, record *models.HistoryRecord) error
}

// Service is the boss orchestrator. It owns the classifier, the routing
// rules, and the subject registry, and turns every incoming question into a
// well-formed response envelope; no error ever escapes to the HTTP layer for
// a business failure. It is constructed once at startup and is safe for
// concurrent use: the registry and prompts are read-only after initialization.
type Service struct {
	llm        llms.Model
	classifier *classifier
	registry   map[string]SubjectDefinition
	history    HistorySaver
}

func NewService(llm llms.Model, history HistorySaver) *Service {
	return &Service{
		llm:        llm,
		classifier: newClassifier(llm, subjectTable),
		registry:   subjectRegistry(),
		history:    history,
	}
}

// HandleQuestion validates, classifies, routes, and answers one question.
// userID is the resolved identity of the caller, or 0 for anonymous requests;
// anonymous results are returned but not persisted.
func (s *Service) HandleQuestion(ctx context.Context, req *models.AskRequest, userID int) *models.AskResponse {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return &models.AskResponse{
			Success: false,
			Error:   "Question must not be empty.",
		}
	}

	grade, ok := ParseGrade(req.Grade)
	if !ok {
		return &models.AskResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid grade level. Must be one of: %s", joinGradeLevels()),
		}
	}

	subject := s.classifier.classify(ctx, question)
	log.Printf("[INFO] Classified question as %q", subject)

	if subject == identityLabel {
		return &models.AskResponse{
			Success: true,
			Answer:  identityAnswer,
		}
	}

	declared := strings.ToLower(strings.TrimSpace(req.SubjectUser))
	decision := reconcile(s.registry, subject, declared, grade)
	if decision.rejected {
		log.Printf("[INFO] Routing rejected question (detected %q, declared %q)", decision.detected, declared)
		resp := &models.AskResponse{
			Success:          false,
			Answer:           decision.reason,
			ProvidedQuestion: question,
			DetectedSubject:  decision.detected,
		}
		if decision.outOfContext {
			resp.SupportedSubjects = SubjectKeys()
		}
		return resp
	}

	strategy := &subjectStrategy{llm: s.llm, def: s.registry[decision.subject]}
	result, err := strategy.process(ctx, question, grade, req.Explanation, req.Steps)
	if err != nil {
		log.Printf("[ERROR] Strategy for %q failed: %v", decision.subject, err)
		return &models.AskResponse{
			Success: false,
			Subject: decision.subject,
			Error:   fmt.Sprintf("Error processing question: %v", err),
		}
	}

	resp := &models.AskResponse{
		Success: true,
		Subject: decision.subject,
		Agent:   result.agent,
		Grade:   result.grade.String(),
		Answer:  result.answer,
	}
	if req.Explanation && result.explanation != "" {
		resp.Explanation = result.explanation
	}
	if req.Steps && result.steps != "" {
		resp.Steps = result.steps
	}

	if userID > 0 && s.history != nil {
		record := &models.HistoryRecord{
			Question:    question,
			Answer:      resp.Answer,
			Explanation: resp.Explanation,
			Steps:       resp.Steps,
			Subject:     decision.subject,
		}
		// Fire-and-forget: the answer is never withheld because storage failed.
		if err := s.history.SaveResponse(userID, record); err != nil {
			log.Printf("[ERROR] Failed to save response for user %d: %v", userID, err)
		}
	}

	return resp
}

func joinGradeLevels() string {
	levels := make([]string, 0, len(gradeLevels))
	for _, grade := range gradeLevels {
		levels = append(levels, grade.String())
	}
	return strings.Join(levels, ", ")
}
