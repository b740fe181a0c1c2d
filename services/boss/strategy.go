package boss

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// subjectStrategy answers a question as one subject expert. Each process call
// issues up to three independent model calls (answer, explanation, steps),
// each a fresh prompt with no shared conversation state. Calls that were not
// requested are never issued.
type subjectStrategy struct {
	llm llms.Model
	def SubjectDefinition
}

type strategyResult struct {
	agent       string
	grade       GradeLevel
	answer      string
	explanation string
	steps       string
}

// process is all-or-nothing: if any call fails, remaining calls are aborted
// and partial output is discarded.
func (s *subjectStrategy) process(ctx context.Context, question string, grade GradeLevel, wantExplanation, wantSteps bool) (*strategyResult, error) {
	result := &strategyResult{
		agent: s.def.Name,
		grade: grade,
	}

	answer, err := s.generate(ctx, s.def.Answer, question, grade)
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}
	result.answer = answer

	if wantExplanation {
		explanation, err := s.generate(ctx, s.def.Explanation, question, grade)
		if err != nil {
			return nil, fmt.Errorf("failed to generate explanation: %w", err)
		}
		result.explanation = explanation
	}

	if wantSteps {
		steps, err := s.generate(ctx, s.def.Steps, question, grade)
		if err != nil {
			return nil, fmt.Errorf("failed to generate steps: %w", err)
		}
		result.steps = steps
	}

	return result, nil
}

func (s *subjectStrategy) generate(ctx context.Context, fragment, question string, grade GradeLevel) (string, error) {
	systemPrompt := renderForGrade(s.def.Base, grade) + "\n\nIMPORTANT: " + renderForGrade(fragment, grade)

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, fmt.Sprintf("Grade Level: %s\nQuestion: %s", grade, question)),
	}

	resp, err := s.llm.GenerateContent(ctx, messages, llms.WithTemperature(s.def.Temperature))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func renderForGrade(template string, grade GradeLevel) string {
	return strings.ReplaceAll(template, "{grade}", grade.String())
}
