package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// localTimeout — жёсткий бюджет первичного бэкенда: он либо быстрый,
// либо его нет.
const localTimeout = 10 * time.Second

type localRequest struct {
	Model            string   `json:"model"`
	Prompt           string   `json:"prompt"`
	Temperature      float64  `json:"temperature"`
	MaxTokens        int      `json:"max_tokens"`
	TopP             float64  `json:"top_p"`
	FrequencyPenalty float64  `json:"frequency_penalty"`
	PresencePenalty  float64  `json:"presence_penalty"`
	Stop             []string `json:"stop"`
}

// LocalClient — клиент локального completion-эндпоинта.
type LocalClient struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewLocalClient(baseURL, model string) *LocalClient {
	return &LocalClient{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: localTimeout},
	}
}

func (c *LocalClient) Name() string {
	return "local"
}

func (c *LocalClient) Complete(ctx context.Context, turn Turn) (string, error) {
	body, err := json.Marshal(localRequest{
		Model:       c.model,
		Prompt:      turn.Prompt,
		Temperature: 0.7,
		MaxTokens:   1000,
		TopP:        0.9,
		Stop:        []string{userLabel, systemLabel},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("local api returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return extractContent(data)
}
