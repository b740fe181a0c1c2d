package boss

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestClassifyNormalizesLabel(t *testing.T) {
	model := &fakeModel{responses: []string{"  Geography \n"}}
	c := newClassifier(model, subjectTable)

	label := c.classify(context.Background(), "What is the capital of France?")
	if label != "geography" {
		t.Errorf("classify() = %q, expected %q", label, "geography")
	}

	if len(model.calls) != 1 {
		t.Fatalf("expected exactly 1 model call, got %d", len(model.calls))
	}
	if model.calls[0].temperature != classifierTemperature {
		t.Errorf("expected classification temperature %v, got %v",
			classifierTemperature, model.calls[0].temperature)
	}
	if !strings.Contains(model.calls[0].human, "What is the capital of France?") {
		t.Errorf("human message should carry the verbatim question, got %q", model.calls[0].human)
	}
}

func TestClassifyDegradesToUnknownOnError(t *testing.T) {
	model := &fakeModel{errs: map[int]error{0: errors.New("connection reset")}}
	c := newClassifier(model, subjectTable)

	label := c.classify(context.Background(), "What is the capital of France?")
	if label != SubjectUnknown {
		t.Errorf("classify() = %q, expected %q on model failure", label, SubjectUnknown)
	}
}

func TestClassifierPromptCoversTaxonomy(t *testing.T) {
	prompt := buildClassifierPrompt(subjectTable)

	for _, def := range subjectTable {
		if !strings.Contains(prompt, def.Key) {
			t.Errorf("classifier prompt is missing subject key %q", def.Key)
		}
		if !strings.Contains(prompt, def.Taxonomy) {
			t.Errorf("classifier prompt is missing taxonomy line for %q", def.Key)
		}
	}

	if !strings.Contains(prompt, `"unknown"`) {
		t.Error("classifier prompt should instruct the unknown fallback")
	}
	if !strings.Contains(prompt, identityLabel) {
		t.Error("classifier prompt should instruct the identity-query escape hatch")
	}
}
