// Package ai holds every generative-model call in the analysis pipeline:
// scoring, fact-check query derivation and the two investigation
// summarizations. All calls declare a structured output contract that is
// validated before the response is trusted.
package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// Client wraps a Gemini client. It supports both the API-key backend and
// Vertex AI (project/location), matching how the model endpoint is deployed.
type Client struct {
	client *genai.Client
	model  string
}

// Options selects the model backend. When Project is set the Vertex backend
// is used and APIKey is ignored.
type Options struct {
	APIKey   string
	Project  string
	Location string
	Model    string
}

func NewClient(ctx context.Context, opts Options) (*Client, error) {
	cc := &genai.ClientConfig{}
	switch {
	case opts.Project != "":
		cc.Backend = genai.BackendVertexAI
		cc.Project = opts.Project
		cc.Location = opts.Location
	case opts.APIKey != "":
		cc.APIKey = opts.APIKey
	default:
		return nil, fmt.Errorf("either a Gemini API key or a Google Cloud project is required")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{client: client, model: model}, nil
}

// generate issues one model call with the given output schema. A nil schema
// requests plain text.
func (c *Client) generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	var config *genai.GenerateContentConfig
	if schema != nil {
		config = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("model returned an empty response")
	}
	return text, nil
}
