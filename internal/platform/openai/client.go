package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/yungbote/connective-drills/internal/config"
	"github.com/yungbote/connective-drills/internal/pkg/httpx"
	"github.com/yungbote/connective-drills/internal/platform/logger"
	"github.com/yungbote/connective-drills/internal/platform/promptstyle"
)

// Client is the LLM surface used by the rest of the backend.
type Client interface {
	// Structured outputs (json_schema)
	GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error)

	// Plain text (no schema)
	GenerateText(ctx context.Context, system string, user string) (string, error)
}

type client struct {
	log        *logger.Logger
	api        *goopenai.Client
	model      string
	maxRetries int
}

func NewClient(cfg config.LLMConfig, log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}

	oc := goopenai.DefaultConfig(apiKey)
	if base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); base != "" {
		oc.BaseURL = base
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	oc.HTTPClient = &http.Client{Timeout: timeout}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &client{
		log:        log.With("service", "OpenAIClient", "model", model),
		api:        goopenai.NewClientWithConfig(oc),
		model:      model,
		maxRetries: 2,
	}, nil
}

// rawSchema lets a plain map satisfy go-openai's json.Marshaler schema field.
type rawSchema map[string]any

func (s rawSchema) MarshalJSON() ([]byte, error) { return json.Marshal(map[string]any(s)) }

func (c *client) GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error) {
	if schemaName == "" {
		return nil, errors.New("schemaName required")
	}
	if schema == nil {
		return nil, errors.New("schema required")
	}

	req := goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: promptstyle.ApplySystem(system, "json")},
			{Role: goopenai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &goopenai.ChatCompletionResponseFormatJSONSchema{
				Name:   schemaName,
				Schema: rawSchema(schema),
				Strict: true,
			},
		},
	}

	text, err := c.complete(ctx, req)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, fmt.Errorf("failed to parse model JSON: %w; text=%s", err, text)
	}
	return obj, nil
}

func (c *client) GenerateText(ctx context.Context, system string, user string) (string, error) {
	req := goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: promptstyle.ApplySystem(system, "text")},
			{Role: goopenai.ChatMessageRoleUser, Content: user},
		},
	}
	return c.complete(ctx, req)
}

func (c *client) complete(ctx context.Context, req goopenai.ChatCompletionRequest) (string, error) {
	backoff := 500 * time.Millisecond
	for attempt := 0; ; attempt++ {
		resp, err := c.api.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", fmt.Errorf("openai returned no choices")
			}
			msg := resp.Choices[0].Message
			if msg.Refusal != "" {
				return "", fmt.Errorf("model refused: %s", msg.Refusal)
			}
			if strings.TrimSpace(msg.Content) == "" {
				return "", fmt.Errorf("openai returned empty content")
			}
			return msg.Content, nil
		}
		if attempt >= c.maxRetries || !isRetryable(err) {
			return "", fmt.Errorf("openai chat completion: %w", err)
		}

		c.log.Warn("OpenAI request retrying",
			"attempt", attempt+1,
			"max_retries", c.maxRetries,
			"sleep", backoff.String(),
			"error", err.Error(),
		)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(httpx.JitterSleep(backoff)):
		}
		backoff *= 2
	}
}

func isRetryable(err error) bool {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return httpx.IsRetryableHTTPStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return httpx.IsRetryableHTTPStatus(reqErr.HTTPStatusCode)
	}
	return false
}
