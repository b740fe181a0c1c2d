package boss

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// fakeModel scripts model responses per call and records every prompt so
// tests can assert call counts and prompt contents.
type modelCall struct {
	system      string
	human       string
	temperature float64
}

type fakeModel struct {
	responses []string
	errs      map[int]error
	calls     []modelCall
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}

	call := modelCall{temperature: opts.Temperature}
	for _, msg := range messages {
		text := partsText(msg)
		switch msg.Role {
		case schema.ChatMessageTypeSystem:
			call.system = text
		case schema.ChatMessageTypeHuman:
			call.human = text
		}
	}

	index := len(m.calls)
	m.calls = append(m.calls, call)

	if err, ok := m.errs[index]; ok {
		return nil, err
	}

	content := "stub response"
	if index < len(m.responses) {
		content = m.responses[index]
	}

	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: content}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := m.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func partsText(msg llms.MessageContent) string {
	var texts []string
	for _, part := range msg.Parts {
		if text, ok := part.(llms.TextContent); ok {
			texts = append(texts, text.Text)
		}
	}
	return strings.Join(texts, "\n")
}
