// Package ai wraps the LLM provider. The rest of the system treats it as a
// function returning derived text and scores; no store invariant depends on
// these calls succeeding.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/threadmind-dev/threadmind/internal/logger"
)

const summarySystemPrompt = "You are a helpful assistant that creates concise, informative summaries of knowledge content. Keep summaries under 150 words and focus on key insights."

const insightsSystemPrompt = "Generate 3-5 key insights or takeaways from the given content. Return them as a JSON array of strings."

type Client struct {
	client         *openai.Client
	model          string
	embeddingModel openai.EmbeddingModel
	timeout        time.Duration
}

func New(apiKey, model, embeddingModel string, timeout time.Duration) *Client {
	return &Client{
		client:         openai.NewClient(apiKey),
		model:          model,
		embeddingModel: openai.EmbeddingModel(embeddingModel),
		timeout:        timeout,
	}
}

// Summarize produces a short summary of content, capped at maxTokens.
func (c *Client) Summarize(ctx context.Context, content string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Please summarize the following content: " + content},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("summary request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summary request returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Insights extracts 3-5 key takeaways from content.
func (c *Client) Insights(ctx context.Context, content string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: insightsSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		MaxTokens:   200,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("insights request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("insights request returned no choices")
	}

	var insights []string
	raw := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		logger.Log.Warn("insights response is not a json array", "error", err)
		return nil, fmt.Errorf("insights response is not a json array: %w", err)
	}
	return insights, nil
}

// Embed converts texts into dense vectors for semantic similarity search.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: c.embeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding response size mismatch: want %d, got %d", len(texts), len(resp.Data))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}
