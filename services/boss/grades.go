package boss

import "github.com/samber/lo"

// GradeLevel is the academic-stage bucket attached to every question. It only
// shapes the wording of prompts; the single behavioral switch is
// SpecializationCapable.
type GradeLevel string

const (
	Grade1st3rd   GradeLevel = "1st-3rd"
	Grade4th5th   GradeLevel = "4th-5th"
	Grade6th8th   GradeLevel = "6th-8th"
	Grade9th10th  GradeLevel = "9th-10th"
	Grade11th12th GradeLevel = "11th-12th"
	GradeCollege  GradeLevel = "college"
	GradeUniv     GradeLevel = "university"
)

var gradeLevels = []GradeLevel{
	Grade1st3rd,
	Grade4th5th,
	Grade6th8th,
	Grade9th10th,
	Grade11th12th,
	GradeCollege,
	GradeUniv,
}

var specializationGrades = []GradeLevel{Grade9th10th, GradeCollege, GradeUniv}

// ParseGrade validates a raw grade string against the seven supported levels.
func ParseGrade(raw string) (GradeLevel, bool) {
	grade := GradeLevel(raw)
	return grade, lo.Contains(gradeLevels, grade)
}

// GradeLevels lists the supported levels in ascending order.
func GradeLevels() []GradeLevel {
	return gradeLevels
}

// SpecializationCapable reports whether students at this level are expected to
// study physics, chemistry, history etc. as separate disciplines rather than
// consolidated science / social science.
func (g GradeLevel) SpecializationCapable() bool {
	return lo.Contains(specializationGrades, g)
}

func (g GradeLevel) String() string {
	return string(g)
}
