package acsummary

import (
	"context"
	"fmt"
	"text/template"

	"google.golang.org/genai"
)

// GenAIClient はGemini APIを使った記事分析を行うクライアント
type GenAIClient struct {
	Client           *genai.Client
	Model            string
	MaxRetry         int
	RetryIntervalSec int
	promptTemplate   *template.Template
}

// NewGenAIClient は新しいGenAIClientインスタンスを作成します。
func NewGenAIClient(ctx context.Context, config *GeminiConfig) (*GenAIClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	t, err := template.New("analysis").Parse(config.AnalysisPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse analysis prompt template: %w", err)
	}

	return &GenAIClient{
		Client:           client,
		Model:            config.Model,
		MaxRetry:         config.RetryCount,
		RetryIntervalSec: config.RetryIntervalSec,
		promptTemplate:   t,
	}, nil
}
