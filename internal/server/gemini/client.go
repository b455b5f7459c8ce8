// Package gemini is a thin client for the Google Generative Language API.
// The rest of the server treats it as an opaque function: brain-dump text
// in, raw model output out, or failure.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-1.5-flash"
)

// promptTemplate fixes the categorization contract: four category labels,
// two urgency labels, two energy labels, JSON array output.
const promptTemplate = `
You are a task parsing AI for Brain Dash, an energy-aware task manager. Parse the following brain dump into individual tasks and categorize each task into ONE of these four categories based on urgency and energy requirements:

1. **Do It Now** (Urgent & High Energy): Critical tasks requiring significant mental effort with deadlines
2. **Focus** (Urgent & Low Energy): Important tasks that are less demanding but still time-sensitive
3. **Productive Procrastination** (Not Urgent & High Energy): Useful tasks that aren't time-sensitive, good for high energy moments
4. **Easy Wins** (Not Urgent & Low Energy): Simple, low-effort tasks that still feel productive

For each task you identify, return it in this exact JSON format:
{
  "content": "The task description",
  "category": "Do It Now" | "Focus" | "Productive Procrastination" | "Easy Wins",
  "urgency": "urgent" | "not_urgent",
  "energy_level": "high" | "low"
}

IMPORTANT RULES:
- Extract individual, actionable tasks from the brain dump
- Be decisive about categorization - pick the BEST fit category for each task
- Look for deadline keywords (today, tomorrow, Friday, etc.) to identify urgency
- Consider mental effort required (writing reports = high energy, making calls = low energy)
- Return ONLY a JSON array of task objects, no other text
- If no clear tasks are found, return an empty array []

Brain Dump: "%s"
`

// Client calls the generateContent endpoint of a fixed model.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

// NewClient constructs a Client with the production endpoint and a request
// timeout appropriate for a synchronous model call.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Categorize sends the brain dump through the fixed instruction template and
// returns the model's raw text reply. It does not interpret the reply;
// parsing and validation belong to the caller.
func (c *Client) Categorize(ctx context.Context, brainDump string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, brainDump)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	// The key travels in a header, never in the URL: transport errors quote
	// the full URL in their message.
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("categorization call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("categorization call failed: %s: %s", resp.Status, string(b))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty model response")
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
