package boss

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func testStrategy(model *fakeModel) *subjectStrategy {
	return &subjectStrategy{llm: model, def: subjectRegistry()["geography"]}
}

func TestProcessAnswerOnly(t *testing.T) {
	model := &fakeModel{responses: []string{"Paris is the capital of France."}}
	strategy := testStrategy(model)

	result, err := strategy.process(context.Background(), "What is the capital of France?", Grade6th8th, false, false)
	if err != nil {
		t.Fatalf("process() returned error: %v", err)
	}

	if len(model.calls) != 1 {
		t.Fatalf("expected exactly 1 model call, got %d", len(model.calls))
	}
	if result.answer != "Paris is the capital of France." {
		t.Errorf("unexpected answer: %q", result.answer)
	}
	if result.explanation != "" || result.steps != "" {
		t.Errorf("explanation/steps should be empty when not requested, got %q / %q",
			result.explanation, result.steps)
	}
	if result.agent != "Geography Expert" {
		t.Errorf("unexpected agent name: %q", result.agent)
	}
}

func TestProcessAllThreeCalls(t *testing.T) {
	model := &fakeModel{responses: []string{"the answer", "the explanation", "the steps"}}
	strategy := testStrategy(model)

	result, err := strategy.process(context.Background(), "Why do rivers meander?", Grade9th10th, true, true)
	if err != nil {
		t.Fatalf("process() returned error: %v", err)
	}

	if len(model.calls) != 3 {
		t.Fatalf("expected exactly 3 model calls, got %d", len(model.calls))
	}
	if result.answer != "the answer" {
		t.Errorf("unexpected answer: %q", result.answer)
	}
	if result.explanation != "the explanation" {
		t.Errorf("unexpected explanation: %q", result.explanation)
	}
	if result.steps != "the steps" {
		t.Errorf("unexpected steps: %q", result.steps)
	}
}

func TestProcessSkipsExplanationWhenOnlyStepsRequested(t *testing.T) {
	model := &fakeModel{responses: []string{"the answer", "the steps"}}
	strategy := testStrategy(model)

	result, err := strategy.process(context.Background(), "How are maps projected?", Grade11th12th, false, true)
	if err != nil {
		t.Fatalf("process() returned error: %v", err)
	}

	if len(model.calls) != 2 {
		t.Fatalf("expected exactly 2 model calls, got %d", len(model.calls))
	}
	if result.explanation != "" {
		t.Errorf("explanation should be empty, got %q", result.explanation)
	}
	if result.steps != "the steps" {
		t.Errorf("unexpected steps: %q", result.steps)
	}
}

func TestProcessDiscardsPartialResultsOnFailure(t *testing.T) {
	model := &fakeModel{
		responses: []string{"the answer", "the explanation"},
		errs:      map[int]error{2: errors.New("model unavailable")},
	}
	strategy := testStrategy(model)

	result, err := strategy.process(context.Background(), "Why do rivers meander?", Grade6th8th, true, true)
	if err == nil {
		t.Fatal("expected error when steps call fails")
	}
	if result != nil {
		t.Errorf("expected nil result on failure, got %+v", result)
	}
	if !strings.Contains(err.Error(), "model unavailable") {
		t.Errorf("error should carry the underlying failure, got %q", err.Error())
	}
}

func TestProcessAbortsRemainingCallsOnFailure(t *testing.T) {
	model := &fakeModel{errs: map[int]error{0: errors.New("boom")}}
	strategy := testStrategy(model)

	_, err := strategy.process(context.Background(), "What is a delta?", Grade6th8th, true, true)
	if err == nil {
		t.Fatal("expected error when answer call fails")
	}
	if len(model.calls) != 1 {
		t.Errorf("expected no further calls after a failure, got %d", len(model.calls))
	}
}

func TestProcessPromptsAreGradeTailored(t *testing.T) {
	model := &fakeModel{responses: []string{"the answer"}}
	strategy := testStrategy(model)

	_, err := strategy.process(context.Background(), "What is the capital of France?", GradeCollege, false, false)
	if err != nil {
		t.Fatalf("process() returned error: %v", err)
	}

	call := model.calls[0]
	if !strings.Contains(call.system, "college") {
		t.Errorf("system prompt should mention the grade, got %q", call.system)
	}
	if strings.Contains(call.system, "{grade}") {
		t.Errorf("system prompt still contains unreplaced placeholder: %q", call.system)
	}
	if !strings.Contains(call.system, "expert Geography teacher") {
		t.Errorf("system prompt should carry the subject base, got %q", call.system)
	}
	if !strings.Contains(call.human, "What is the capital of France?") {
		t.Errorf("human message should carry the question, got %q", call.human)
	}
	if call.temperature != 0.6 {
		t.Errorf("expected subject temperature 0.6, got %v", call.temperature)
	}
}

func TestProcessScienceUsesHigherTemperature(t *testing.T) {
	model := &fakeModel{responses: []string{"the answer"}}
	strategy := &subjectStrategy{llm: model, def: subjectRegistry()["science"]}

	_, err := strategy.process(context.Background(), "Why is the sky blue?", Grade4th5th, false, false)
	if err != nil {
		t.Fatalf("process() returned error: %v", err)
	}
	if model.calls[0].temperature != 0.7 {
		t.Errorf("expected science temperature 0.7, got %v", model.calls[0].temperature)
	}
}
