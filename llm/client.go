// client.go - OpenAI-compatible chat-completions client.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Sentinel errors for client construction and responses.
var (
	// ErrNoAPIKey indicates that no API key was configured.
	ErrNoAPIKey = errors.New("llm: api key is required")

	// ErrNoModel indicates that no model name was configured.
	ErrNoModel = errors.New("llm: model is required")

	// ErrEmptyResponse indicates a completion with no choices.
	ErrEmptyResponse = errors.New("llm: empty completion response")
)

// DefaultTimeout bounds a single completion request. Reasoning-heavy
// models routinely take minutes on large topologies.
const DefaultTimeout = 5 * time.Minute

// Config configures a Client.
//
// BaseURL may point at any OpenAI-compatible endpoint; empty selects the
// upstream default. Temperature and MaxTokens are passed through verbatim
// (zero MaxTokens lets the server decide).
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	Template    string // handlebars prompt template; empty uses DefaultTemplate
}

// Client talks to one chat-completions endpoint with one model.
type Client struct {
	api      *openai.Client
	model    string
	temp     float32
	maxTok   int
	timeout  time.Duration
	template string
}

// New validates cfg and builds a Client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrNoModel
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		api:      openai.NewClientWithConfig(oc),
		model:    cfg.Model,
		temp:     cfg.Temperature,
		maxTok:   cfg.MaxTokens,
		timeout:  timeout,
		template: cfg.Template,
	}, nil
}

// Model returns the configured model name (result files are keyed by it).
func (c *Client) Model() string { return c.model }

// Complete sends a single user message and returns the reply text.
func (c *Client) Complete(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temp,
		MaxTokens:   c.maxTok,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// Solve renders the routing prompt from the three description blocks and
// asks the model for a plan. The reply is raw text; parse it with
// routing.ParsePlan.
func (c *Client) Solve(ctx context.Context, data PromptData) (string, error) {
	prompt, err := RenderPrompt(c.template, data)
	if err != nil {
		return "", err
	}

	return c.Complete(ctx, prompt)
}
