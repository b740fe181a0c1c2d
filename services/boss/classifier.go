package boss

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

const (
	// SubjectUnknown is what the classifier degrades to when the model fails
	// or the question fits no category. The router treats any label that is
	// not a registered subject key the same way.
	SubjectUnknown = "unknown"

	// identityLabel is the classifier's escape hatch for questions about the
	// system's own authorship. It is a distinguished outcome, not a subject.
	identityLabel = "identityquery"

	classifierTemperature = 0.3
)

// classifier maps free-text questions to a subject label with a single model
// call. The taxonomy in its system prompt is derived from the subject table,
// so the advertised labels can never drift from the routable ones.
type classifier struct {
	llm          llms.Model
	systemPrompt string
}

func newClassifier(llm llms.Model, subjects []SubjectDefinition) *classifier {
	return &classifier{
		llm:          llm,
		systemPrompt: buildClassifierPrompt(subjects),
	}
}

func buildClassifierPrompt(subjects []SubjectDefinition) string {
	keys := make([]string, 0, len(subjects))

	var b strings.Builder
	b.WriteString("You are a question classifier. Analyze the given question and determine which subject it belongs to.\n\n")
	b.WriteString("Available subjects:\n")
	for _, def := range subjects {
		fmt.Fprintf(&b, "   - %s: %s\n", def.Key, def.Taxonomy)
		keys = append(keys, def.Key)
	}
	fmt.Fprintf(&b, "\nRespond with ONLY the subject name (%s).\n\n", strings.Join(keys, " / "))
	b.WriteString("If the question doesn't clearly fit any category, respond with \"unknown\".\n\n")
	b.WriteString("SPECIAL RULE:\n")
	fmt.Fprintf(&b, "- If the user asks \"who developed you\" or similar (who made you, who is your developer, etc.), then do not classify into any subject. Respond with ONLY %q.\n", identityLabel)

	return b.String()
}

// classify never returns an error: any model failure degrades to
// SubjectUnknown so a classification hiccup can only cause the generic
// rejection path, not a crashed request. The returned label is free text from
// the model, lower-cased and trimmed; callers must treat anything that is not
// a registered key as unknown.
func (c *classifier) classify(ctx context.Context, question string) string {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, c.systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, fmt.Sprintf("Classify this question: %s", question)),
	}

	resp, err := c.llm.GenerateContent(ctx, messages, llms.WithTemperature(classifierTemperature))
	if err != nil {
		log.Printf("[ERROR] Classification failed: %v", err)
		return SubjectUnknown
	}
	if len(resp.Choices) == 0 {
		log.Printf("[ERROR] Classification returned no choices")
		return SubjectUnknown
	}

	return strings.ToLower(strings.TrimSpace(resp.Choices[0].Content))
}
