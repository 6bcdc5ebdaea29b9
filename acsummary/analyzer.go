package acsummary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// AnalysisResult は記事分析の結果を保持する
type AnalysisResult struct {
	Genre   string `json:"genre"`
	Summary string `json:"summary"`
}

type promptData struct {
	Title      string
	HandleName string
	Date       string
	Comment    string
	Content    string
}

// buildPrompt は記事情報をプロンプトテンプレートに展開します。
func (c *GenAIClient) buildPrompt(article *Article) (string, error) {
	promptBuilder := &strings.Builder{}
	err := c.promptTemplate.Execute(promptBuilder, promptData{
		Title:      article.Title,
		HandleName: article.HandleName,
		Date:       article.Date.Format("2006-01-02"),
		Comment:    article.Comment,
		Content:    article.Content,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return promptBuilder.String(), nil
}

// AnalyzeArticle は記事の内容を分析してジャンルと要約を生成します。
func (c *GenAIClient) AnalyzeArticle(ctx context.Context, article *Article) (AnalysisResult, error) {
	if article.Content == "" {
		return AnalysisResult{}, fmt.Errorf("article content is empty: %s", article.URL)
	}

	// モデル設定（構造化出力）
	modelConfig := &genai.GenerateContentConfig{
		Temperature:      new(float32), // 0
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"genre": {
					Type: genai.TypeString,
				},
				"summary": {
					Type: genai.TypeString,
				},
			},
			PropertyOrdering: []string{"genre", "summary"},
			Required:         []string{"genre", "summary"},
		},
	}

	prompt, err := c.buildPrompt(article)
	if err != nil {
		return AnalysisResult{}, err
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	// LLMへのリクエストとリトライ処理
	var resp *genai.GenerateContentResponse
	for i := 0; i < c.MaxRetry+1; i++ {
		pkgLogger.Debug("Calling Gemini API", "attempt", i+1, "model", c.Model, "url", article.URL)
		resp, err = c.Client.Models.GenerateContent(ctx, c.Model, contents, modelConfig)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return AnalysisResult{}, fmt.Errorf("analysis canceled: %w", ctx.Err())
		}
		pkgLogger.Warn("Gemini API call failed", "attempt", i+1, "max_retry", c.MaxRetry+1, "error", err, "retrying_in_seconds", c.RetryIntervalSec)
		time.Sleep(time.Duration(c.RetryIntervalSec) * time.Second)
	}
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("failed to get response from Gemini API after %d retries: %w", c.MaxRetry, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return AnalysisResult{}, fmt.Errorf("no content generated by Gemini API")
	}

	responseText := resp.Text()
	pkgLogger.Debug("Gemini API response", "response", responseText)

	var result AnalysisResult
	err = json.Unmarshal([]byte(responseText), &result)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("failed to parse JSON response from Gemini API: %w", err)
	}

	if result.Genre == "" || result.Summary == "" {
		return AnalysisResult{}, fmt.Errorf("incomplete analysis result from Gemini API")
	}

	return result, nil
}
