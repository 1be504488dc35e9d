package llm

import "encoding/json"

// Оба бэкенда отвечают в формате choices; первичный кладёт текст в text,
// резервный — в message.content.
type completionResponse struct {
	Choices []struct {
		Text    string `json:"text"`
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func extractContent(body []byte) (string, error) {
	var resp completionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	choice := resp.Choices[0]
	if choice.Text != "" {
		return choice.Text, nil
	}
	return choice.Message.Content, nil
}
