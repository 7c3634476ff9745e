package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrExtraction marks a failed completion call. Fatal at startup when the
// key is missing; per-call recoverable afterwards.
var ErrExtraction = errors.New("extraction failed")

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4-turbo"

	// The fetch has its own 10s bound; the completion call gets a generous
	// one because postings can be long.
	requestTimeout = 60 * time.Second

	maxTokens = 500
)

const systemPrompt = "You are a helpful assistant that extracts and summarizes job information."

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client submits job posting text to the completion service and returns the
// raw structured-text answer.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// buildPrompt wraps the posting text in the fixed eight-field instruction.
// The Label: value output format must stay in lock-step with the parser.
func buildPrompt(visibleText string) string {
	return fmt.Sprintf(`Analyze the provided job description and extract the following:
1. Company Name
2. Job Title
3. Job Location Type (Remote, Hybrid, or Onsite)
4. Summary of the Position
5. Required Skills, Technology Stack or Experience needed (summarized)
6. Benefits Summary (list key benefits offered, 401K, types of insurance offered, if mentioned (summarized))
7. Application Deadline (if mentioned)
8. Salary or Compensation (if mentioned)

Data:
%s

Provide the details in the following structured format:
Company Name: <company name>
Job Title: <job title>
Job Location Type: <Remote/Hybrid/Onsite>
Position Summary: <summary of the position>
Skills/Technology Stack: <skills or technologies>
Benefits Summary: <benefits summary>
Application Deadline: <deadline>
Salary: <salary or compensation>`, visibleText)
}

// Extract sends the posting text to the completion service with deterministic
// sampling and returns the model's answer verbatim. No schema validation is
// performed on the output.
func (c *Client) Extract(ctx context.Context, visibleText string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: API key not set", ErrExtraction)
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(visibleText)},
		},
		MaxTokens:   maxTokens,
		Temperature: 0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrExtraction, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrExtraction, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: HTTP %d: %s", ErrExtraction, resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrExtraction, err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrExtraction)
	}

	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}
