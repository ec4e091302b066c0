// Package llm provides a client for interacting with Large Language Models.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"curriculum-design-go/internal/config"
	"curriculum-design-go/pkg/log"
)

// Message 表示一条角色消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationParams 控制生成行为
type GenerationParams struct {
	Temperature *float64
	MaxTokens   *int
}

// Client defines the interface for an LLM client.
type Client interface {
	// ChatCompletion 以 role-based 消息与可选生成参数同步调用聊天接口，返回完整回复文本。
	ChatCompletion(ctx context.Context, messages []Message, gen *GenerationParams) (string, error)
}

type groqClient struct {
	cfg    config.LLMConfig
	client *http.Client
}

// NewClient creates a new LLM client based on the provider in the config.
func NewClient(cfg config.LLMConfig) Client {
	return &groqClient{
		cfg:    cfg,
		client: &http.Client{},
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion calls the Groq OpenAI-compatible API for a single chat completion.
func (c *groqClient) ChatCompletion(ctx context.Context, messages []Message, gen *GenerationParams) (string, error) {
	log.Infof("[LLMClient] 开始调用 Chat API, model: %s, messages: %d", c.cfg.Model, len(messages))
	reqBody := chatRequest{
		Model:    c.cfg.Model,
		Messages: messages,
	}
	if gen != nil {
		reqBody.Temperature = gen.Temperature
		reqBody.MaxTokens = gen.MaxTokens
	}

	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/chat/completions", bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Errorf("[LLMClient] 调用 Chat API 失败, error: %v", err)
		return "", fmt.Errorf("failed to call chat api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Errorf("[LLMClient] Chat API 返回非 200 状态码: %s", resp.Status)
		return "", fmt.Errorf("chat api returned non-200 status: %s, body: %s", resp.Status, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		log.Errorf("[LLMClient] 解析 Chat API 响应失败, error: %v", err)
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		log.Warnf("[LLMClient] Chat API 返回了空的回复内容")
		return "", fmt.Errorf("received empty completion from api")
	}

	log.Infof("[LLMClient] 成功获取回复, 长度: %d", len(chatResp.Choices[0].Message.Content))
	return chatResp.Choices[0].Message.Content, nil
}
