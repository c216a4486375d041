// Package agent holds the natural-language responder collaborator. The
// engine only depends on the Responder contract; the Claude implementation
// is the one wired in production.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"

	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/query"
)

// Responder answers a free-text question given the data excerpt selected
// for it.
type Responder interface {
	Respond(ctx context.Context, q string, data map[string]any) (string, error)
}

// Claude is a Responder backed by the Anthropic Messages API
type Claude struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	system    string
	log       *logrus.Logger
}

// NewClaude initializes the Claude responder. The system prompt is built
// once from the user's standing position.
func NewClaude(apiKey, model string, user models.UserProfile, netWorth float64, log *logrus.Logger) *Claude {
	return &Claude{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     anthropic.Model(model),
		maxTokens: 1024,
		system:    fmt.Sprintf(SystemPromptTemplate, user.Name, user.RiskProfile, netWorth),
		log:       log,
	}
}

// Respond sends the question and its data excerpt to the model and
// post-processes chart requests in the reply.
func (c *Claude) Respond(ctx context.Context, q string, data map[string]any) (string, error) {
	excerpt, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize data excerpt: %w", err)
	}
	prompt := fmt.Sprintf(QueryPromptTemplate, q, string(excerpt))

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: c.system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("responder call failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}

	c.log.Debugf("Responder answered %d chars for query %q", sb.Len(), q)
	return PostProcess(sb.String(), q), nil
}

// PostProcess strips the chart request marker from a reply and appends a
// note naming the visualization the UI will render, when the query
// classifies to one.
func PostProcess(response, q string) string {
	if !strings.Contains(response, "[CHART REQUESTED]") {
		return response
	}
	response = strings.ReplaceAll(response, "[CHART REQUESTED]", "")
	if category, ok := query.Classify(q); ok {
		label := strings.ReplaceAll(string(category), "_", " ")
		response += fmt.Sprintf("\n\n[A visualization for %s has been generated and is available in the UI.]", label)
	}
	return response
}
