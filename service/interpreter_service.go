package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const interpreterSystemPrompt = "You convert spoken financial inputs to numeric values. " +
	"Return ONLY valid JSON with keys: normalized, number, confidence."

// NumberInterpreter clarifies ambiguous spoken amounts through an
// OpenRouter-compatible chat-completions endpoint. It is an optional,
// best-effort collaborator: disabled without an API key, and every failure
// reports ok=false so normalization falls through to its default.
type NumberInterpreter struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
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

type interpretation struct {
	Normalized string   `json:"normalized"`
	Number     *float64 `json:"number"`
	Confidence float64  `json:"confidence"`
}

// NewNumberInterpreter creates the interpreter. An empty apiKey disables it;
// an empty model falls back to openai/gpt-4o-mini.
func NewNumberInterpreter(apiKey, model string) *NumberInterpreter {
	if model == "" {
		model = "openai/gpt-4o-mini"
	}
	return &NumberInterpreter{
		apiKey:  apiKey,
		apiURL:  "https://openrouter.ai/api/v1/chat/completions",
		model:   model,
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Enabled reports whether an API key is configured.
func (s *NumberInterpreter) Enabled() bool {
	return s.enabled
}

// ParseNumber asks the remote model to resolve raw into a numeric value.
func (s *NumberInterpreter) ParseNumber(ctx context.Context, raw string) (float64, bool) {
	if !s.enabled {
		return 0, false
	}

	result, err := s.callLLM(ctx, raw)
	if err != nil {
		log.Printf("Warning: remote number interpretation failed for %q: %v", raw, err)
		return 0, false
	}
	if result.Number == nil {
		return 0, false
	}
	return *result.Number, true
}

func (s *NumberInterpreter) callLLM(ctx context.Context, input string) (*interpretation, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: interpreterSystemPrompt},
			{Role: "user", Content: "Input: " + input},
		},
		Temperature: 0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, err
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no response from interpreter")
	}

	var result interpretation
	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("interpreter returned non-JSON content: %w", err)
	}
	return &result, nil
}
