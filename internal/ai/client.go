// File: internal/ai/client.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Message 為一則對話訊息，role 為 user 或 assistant
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client 定義對話補全介面，測試時可替換 FakeClient
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

type completionRequest struct {
	Model               string    `json:"model"`
	Messages            []Message `json:"messages"`
	MaxCompletionTokens int       `json:"max_completion_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// OpenAIClient 透過 OpenAI 相容的 chat completions API 取得回覆
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// NewOpenAIClient 建立補全客戶端
// baseURL 可指向任何 OpenAI 相容服務，空字串使用官方位址
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-5.1"
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		http:    &http.Client{},
	}
}

// Complete 送出完整對話歷史並回傳第一個選項的內容
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:               c.model,
		Messages:            messages,
		MaxCompletionTokens: 1024,
	})
	if err != nil {
		return "", fmt.Errorf("Complete: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("Complete: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("Complete: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("Complete: unexpected status %d: %s", resp.StatusCode, raw)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("Complete: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("Complete: empty choices")
	}
	return out.Choices[0].Message.Content, nil
}

// FakeClient 執行 Fake 設定或 panic
type FakeClient struct {
	CompleteFn func(ctx context.Context, messages []Message) (string, error)
}

func (f *FakeClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if f.CompleteFn != nil {
		return f.CompleteFn(ctx, messages)
	}
	panic("unexpected Complete")
}
