// Package proxy is the pipeline's HTTP client toward the completion proxy.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"persona-chat/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

type completionRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type completionResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Complete posts the conversation to the persona endpoint and returns the
// reply string. A non-2xx status becomes an error carrying the proxy's error
// text so callers can match on it; an empty reply is returned as-is and left
// for the caller to substitute.
func (c *Client) Complete(ctx context.Context, endpoint string, history []domain.ChatMessage) (string, error) {
	body, err := json.Marshal(completionRequest{Messages: history})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var apiResp completionResponse
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if json.Unmarshal(respBody, &apiResp) == nil && apiResp.Error != "" {
			return "", fmt.Errorf("proxy error: %s", apiResp.Error)
		}
		return "", fmt.Errorf("proxy error: HTTP %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", err
	}
	return apiResp.Message, nil
}
