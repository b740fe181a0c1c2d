package boss

import (
	"fmt"

	"github.com/samber/lo"
)

// routeDecision is a tagged outcome: either an accepted subject key or a
// named rejection with a user-facing reason. A rejection can never be
// mistaken for a successful empty route.
type routeDecision struct {
	subject      string
	rejected     bool
	reason       string
	detected     string
	outOfContext bool
}

var scienceSubCategories = []string{"physics", "chemistry", "biology", "environmentalscience"}
var socialScienceSubCategories = []string{"history", "geography", "civics", "economics"}

// reconcile resolves the classifier's label against the user-declared subject.
// Rules, in order: reject unregistered labels; consolidate science / social
// science sub-disciplines into the generalist subject at grades below the
// specialization level; reject declared-vs-detected mismatches, except when
// the user declared generalknowledge, which overlaps every subject and never
// blocks routing.
func reconcile(registry map[string]SubjectDefinition, classified, declared string, grade GradeLevel) routeDecision {
	if classified == SubjectUnknown {
		return outOfContextRejection(classified)
	}
	if _, ok := registry[classified]; !ok {
		return outOfContextRejection(classified)
	}

	subject := classified
	if !grade.SpecializationCapable() {
		if declared == "science" && lo.Contains(scienceSubCategories, subject) {
			subject = "science"
		}
		if declared == "socialscience" && lo.Contains(socialScienceSubCategories, subject) {
			subject = "socialscience"
		}
	}

	if declared != "" && declared != subject && declared != "generalknowledge" {
		return routeDecision{
			rejected: true,
			reason:   fmt.Sprintf("Subject mismatch. You requested help with %s, but the question is classified under %s.", declared, subject),
			detected: subject,
		}
	}

	return routeDecision{subject: subject}
}

func outOfContextRejection(detected string) routeDecision {
	return routeDecision{
		rejected:     true,
		reason:       "Out of context question. I can only help with questions from the supported school subjects.",
		detected:     detected,
		outOfContext: true,
	}
}
