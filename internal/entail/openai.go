package entail

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/credlens/credlens/internal/model"
	openai "github.com/sashabaranov/go-openai"
)

const classifyPrompt = `You are a natural language inference classifier.
Given a CLAIM and an EVIDENCE statement, decide the logical stance of the
evidence toward the claim.

Answer with exactly one line in the form:
RELATION CONFIDENCE

where RELATION is one of SUPPORTS, CONTRADICTS, NEUTRAL and CONFIDENCE is a
number between 0 and 1. No other text.`

// OpenAIClassifier performs zero-shot entailment via a chat model. A custom
// BaseURL points it at any OpenAI-compatible server.
type OpenAIClassifier struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClassifier creates an OpenAI-backed classifier
func NewOpenAIClassifier(cfg model.EntailmentConfig) (*OpenAIClassifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required for the openai entailment provider")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	chatModel := cfg.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIClassifier{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   chatModel,
		timeout: timeout,
	}, nil
}

// Name returns the classifier name
func (c *OpenAIClassifier) Name() string {
	return "openai"
}

// Classify returns the relation of evidence toward claim
func (c *OpenAIClassifier) Classify(ctx context.Context, claim, evidence string) (Result, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: classifyPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("CLAIM: %s\nEVIDENCE: %s", claim, evidence),
			},
		},
		MaxTokens:   16,
		Temperature: 0,
	})
	if err != nil {
		return Result{}, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("no response from OpenAI")
	}

	return parseClassification(resp.Choices[0].Message.Content)
}

// parseClassification parses a "RELATION CONFIDENCE" response line
func parseClassification(text string) (Result, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) < 1 {
		return Result{}, fmt.Errorf("empty classification response")
	}

	var relation model.Relation
	switch strings.ToUpper(strings.Trim(fields[0], ".,:")) {
	case "SUPPORTS", "ENTAILMENT":
		relation = model.RelationSupports
	case "CONTRADICTS", "CONTRADICTION":
		relation = model.RelationContradicts
	case "NEUTRAL":
		relation = model.RelationNeutral
	default:
		return Result{}, fmt.Errorf("unrecognized relation in response: %q", text)
	}

	confidence := 0.5
	if len(fields) >= 2 {
		if parsed, err := strconv.ParseFloat(strings.Trim(fields[1], ".,"), 64); err == nil {
			confidence = clampConfidence(parsed)
		}
	}

	return Result{Relation: relation, Confidence: confidence}, nil
}
