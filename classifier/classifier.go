// Package classifier sends extracted text to the Gemini API and returns a
// structured title/content/tags/category result.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"summary-share/apperrors"
	"summary-share/internal/logger"
	"summary-share/config"
)

// Result is the structured classification of a piece of content.
type Result struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

const SYSTEM_INSTRUCTION = `
You are a content extraction and summarization assistant. You are given source text and a user instruction describing what to extract.
The response MUST be a valid JSON object with four keys:

1. title: A short title for the extracted content, no more than 50 characters.
2. content: The extracted information itself.
   - Only extract the information that directly matches the user instruction.
   - Answer in rich detail unless the instruction asks you to be terse.
   - If no information matches the instruction, return an empty string ('').
   - Do not include any additional commentary or explanations.
   - Format the content as simple HTML using ONLY these tags:
     <p>, <br>, <h1>, <h2>, <h3>, <strong>, <em>, <ul>, <ol>, <li>,
     <table>, <tr>, <td>, <th>, <a>.
3. tags: A list of at most 5 short keywords describing the content.
4. category: The single category that best describes the content.
   You MUST choose only from the following list:
   ["technology", "business", "health & wellness", "education", "lifestyle",
    "entertainment", "science", "politics", "art & culture", "sports",
    "food & drink", "travel", "other"].

You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `).
The response should contain ONLY the raw JSON string.
`

// responseSchema constrains the model response to the expected shape.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":    {Type: genai.TypeString},
		"content":  {Type: genai.TypeString},
		"tags":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"category": {Type: genai.TypeString},
	},
	Required: []string{"title", "content", "tags", "category"},
}

// Client talks to the Gemini API. Configuration is injected at
// construction; nothing is read from the environment at call time.
type Client struct {
	cfg    config.ClassifierConfig
	client *genai.Client
}

func NewClient(ctx context.Context, cfg config.ClassifierConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("classifier API key is not set")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{cfg: cfg, client: gc}, nil
}

// Classify sends content plus the user's instruction to the model and
// parses the structured response. Transient upstream failures are retried
// up to the configured bound; a malformed response is never retried since
// it signals a prompt/response mismatch, not transience.
func (c *Client) Classify(ctx context.Context, content, instruction, contentKind string) (*Result, error) {
	prompt := fmt.Sprintf(
		"Source kind: %s\n\nUser instruction: %s\n\nSource text:\n%s",
		contentKind, instruction, content,
	)

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema,
	}

	maxRetries := c.cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	var raw string
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), genCfg)
		if err != nil {
			lastErr = err
			logger.WarnWithFields("classifier call failed", logger.Fields{
				"attempt": attempt + 1,
				"error":   err.Error(),
			})
			if ctx.Err() != nil {
				break
			}
			continue
		}
		raw = result.Text()
		lastErr = nil
		break
	}
	if lastErr != nil {
		return nil, apperrors.ErrClassifierUpstream.WithCause(lastErr)
	}

	return ParseResult(raw)
}

// ParseResult validates and decodes the model's JSON response. All four
// keys must be present.
func ParseResult(raw string) (*Result, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, apperrors.ErrClassifier.WithCause(err)
	}
	for _, key := range []string{"title", "content", "tags", "category"} {
		if _, ok := keys[key]; !ok {
			return nil, apperrors.ErrClassifier.WithCause(fmt.Errorf("response missing %q field", key))
		}
	}

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, apperrors.ErrClassifier.WithCause(err)
	}
	return &result, nil
}
