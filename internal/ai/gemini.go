// Package ai wraps the Gemini generateContent API behind the narrow
// completion contract the assistant endpoint needs.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	model          = "gemini-2.5-flash"

	systemInstruction = "You are a creative, expert assistant for an artisan aromatic-candle " +
		"business. Your answers should be helpful, inspiring and focused on handmade-goods " +
		"commerce. Use the occasional emoji. Answer in Brazilian Portuguese."
)

// ErrNotConfigured is returned when no API key was provided.
var ErrNotConfigured = errors.New("assistant API key not configured")

// Client defines the completion contract of the assistant.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	httpClient *resty.Client
	apiKey     string
}

// Option adjusts the client, used by tests to point at a fake server.
type Option func(*geminiClient)

func WithBaseURL(url string) Option {
	return func(c *geminiClient) {
		c.httpClient.SetBaseURL(url)
	}
}

// NewClient creates a configured Gemini client. An empty apiKey yields a
// client whose calls fail with ErrNotConfigured; the handler surfaces that
// text directly to the user.
func NewClient(apiKey string, opts ...Option) Client {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetHeader("content-type", "application/json").
		SetTimeout(30 * time.Second)

	c := &geminiClient{httpClient: client, apiKey: apiKey}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	SystemInstruction content   `json:"system_instruction"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	reqBody := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}

	var respBody generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", c.apiKey).
		SetBody(reqBody).
		SetResult(&respBody).
		SetError(&respBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", model))

	if err != nil {
		return "", fmt.Errorf("assistant api call: %w", err)
	}
	if resp.IsError() {
		if respBody.Error != nil && respBody.Error.Message != "" {
			return "", fmt.Errorf("assistant api error: %s", respBody.Error.Message)
		}
		return "", fmt.Errorf("assistant api error: %s", resp.Status())
	}
	if len(respBody.Candidates) == 0 || len(respBody.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from assistant")
	}

	return respBody.Candidates[0].Content.Parts[0].Text, nil
}
