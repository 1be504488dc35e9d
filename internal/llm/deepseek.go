package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// DeepSeekClient — резервный chat-completion бэкенд. Таймаут транспорта
// не переопределяется: сервис считается надёжным, но удалённым.
type DeepSeekClient struct {
	url          string
	apiKey       string
	model        string
	systemPrompt string
	client       *http.Client
}

func NewDeepSeekClient(url, apiKey, model, systemPrompt string) *DeepSeekClient {
	return &DeepSeekClient{
		url:          url,
		apiKey:       apiKey,
		model:        model,
		systemPrompt: systemPrompt,
		client:       &http.Client{},
	}
}

func (c *DeepSeekClient) Name() string {
	return "deepseek"
}

func (c *DeepSeekClient) Complete(ctx context.Context, turn Turn) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: c.systemPrompt},
			{Role: "user", Content: turn.UserText},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepseek api returned %d: %s", resp.StatusCode, data)
	}
	return extractContent(data)
}
