package boss

import (
	"strings"
	"testing"
)

func TestSubjectTableIntegrity(t *testing.T) {
	seen := make(map[string]bool)

	for _, def := range subjectTable {
		if def.Key == "" {
			t.Fatal("subject with empty key")
		}
		if seen[def.Key] {
			t.Errorf("duplicate subject key %q", def.Key)
		}
		seen[def.Key] = true

		if def.Key != strings.ToLower(def.Key) {
			t.Errorf("subject key %q must be lowercase to survive classifier normalization", def.Key)
		}
		if def.Name == "" || def.Taxonomy == "" {
			t.Errorf("subject %q is missing name or taxonomy", def.Key)
		}
		if def.Base == "" || def.Answer == "" || def.Explanation == "" || def.Steps == "" {
			t.Errorf("subject %q is missing a prompt fragment", def.Key)
		}
		if !strings.Contains(def.Base, "{grade}") {
			t.Errorf("subject %q base prompt is not grade-parameterized", def.Key)
		}
		if def.Temperature <= 0 || def.Temperature > 1 {
			t.Errorf("subject %q has implausible temperature %v", def.Key, def.Temperature)
		}
	}

	// Routing targets referenced by the consolidation rules must exist.
	required := []string{"science", "socialscience", "generalknowledge"}
	required = append(required, scienceSubCategories...)
	required = append(required, socialScienceSubCategories...)
	for _, key := range required {
		if !seen[key] {
			t.Errorf("routing rules reference unregistered subject %q", key)
		}
	}
}

func TestSubjectKeysMatchRegistry(t *testing.T) {
	keys := SubjectKeys()
	registry := subjectRegistry()

	if len(keys) != len(registry) {
		t.Fatalf("SubjectKeys() returned %d keys, registry has %d", len(keys), len(registry))
	}
	for _, key := range keys {
		if _, ok := registry[key]; !ok {
			t.Errorf("key %q missing from registry", key)
		}
	}
}

func TestGradeLevels(t *testing.T) {
	if len(GradeLevels()) != 7 {
		t.Fatalf("expected 7 grade levels, got %d", len(GradeLevels()))
	}

	tests := []struct {
		raw   string
		valid bool
	}{
		{"1st-3rd", true},
		{"4th-5th", true},
		{"6th-8th", true},
		{"9th-10th", true},
		{"11th-12th", true},
		{"college", true},
		{"university", true},
		{"kindergarten", false},
		{"7th", false},
		{"", false},
	}

	for _, tt := range tests {
		if _, ok := ParseGrade(tt.raw); ok != tt.valid {
			t.Errorf("ParseGrade(%q) valid = %v, expected %v", tt.raw, ok, tt.valid)
		}
	}
}

func TestSpecializationCapable(t *testing.T) {
	capable := []GradeLevel{Grade9th10th, GradeCollege, GradeUniv}
	notCapable := []GradeLevel{Grade1st3rd, Grade4th5th, Grade6th8th, Grade11th12th}

	for _, grade := range capable {
		if !grade.SpecializationCapable() {
			t.Errorf("%s should be specialization capable", grade)
		}
	}
	for _, grade := range notCapable {
		if grade.SpecializationCapable() {
			t.Errorf("%s should not be specialization capable", grade)
		}
	}
}
