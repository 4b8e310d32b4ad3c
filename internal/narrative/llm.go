package narrative

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"rehoboam/internal/logger"
)

const defaultModel = "claude-sonnet-4-5-20250929"

// Generator produces narratives from month contexts, falling back to the
// synthesized summary when the model is unreachable or returns nothing.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	enabled   bool
}

// NewGenerator creates a generator. An empty API key yields a generator that
// always produces the fallback summary.
func NewGenerator(apiKey, model string, maxTokens int64) *Generator {
	if model == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	g := &Generator{model: model, maxTokens: maxTokens}
	if apiKey != "" {
		g.client = anthropic.NewClient(option.WithAPIKey(apiKey))
		g.enabled = true
	}
	return g
}

// Generate returns the narrative for narrativeCtx. On any generation failure
// the fallback summary is returned together with the underlying error, so
// callers always have something to show.
func (g *Generator) Generate(ctx context.Context, narrativeCtx Context) (string, error) {
	if !g.enabled {
		return narrativeCtx.FallbackSummary(), nil
	}

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(narrativeCtx.Prompt())),
		},
	})
	if err != nil {
		logger.Warn("Narrative generation failed, using synthesized summary: %v", err)
		return narrativeCtx.FallbackSummary(), fmt.Errorf("narrative generation failed: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}

	logger.Warn("Narrative generation returned no text, using synthesized summary")
	return narrativeCtx.FallbackSummary(), fmt.Errorf("no text content in model response")
}
