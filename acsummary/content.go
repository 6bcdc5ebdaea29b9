package acsummary

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

// ContentProcessor は記事ページの取得と本文抽出を行う
type ContentProcessor struct {
	fetcher   *PageFetcher
	maxLength int
}

// NewContentProcessor は新しいContentProcessorインスタンスを作成します。
// maxLength は抽出後のテキスト長の上限（文字数）です。
func NewContentProcessor(fetcher *PageFetcher, maxLength int) *ContentProcessor {
	return &ContentProcessor{
		fetcher:   fetcher,
		maxLength: maxLength,
	}
}

// FetchContent は記事ページを取得し、本文をプレーンテキストとして
// Articleに設定します。タイトルが未設定の場合はページから補完します。
func (p *ContentProcessor) FetchContent(ctx context.Context, article *Article) error {
	html, err := p.fetcher.Fetch(ctx, article.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch article page: %w", err)
	}

	pageURL, err := url.Parse(article.URL)
	if err != nil {
		return fmt.Errorf("failed to parse article URL %s: %w", article.URL, err)
	}

	// readabilityで本文領域だけを抽出し、ナビゲーションやフッターを落とす
	parsed, err := readability.FromReader(bytes.NewReader(html), pageURL)
	if err != nil {
		return fmt.Errorf("failed to extract article content: %w", err)
	}
	if parsed.Content == "" {
		return fmt.Errorf("no content extracted from %s", article.URL)
	}

	content, err := p.cleanContent(parsed.Content)
	if err != nil {
		return err
	}

	if article.Title == "" {
		article.Title = strings.TrimSpace(parsed.Title)
	}
	article.Content = content
	return nil
}

// cleanContent は抽出済みのHTMLをプレーンテキストに変換し、
// LLMのコンテキストに収まる長さに切り詰めます。
func (p *ContentProcessor) cleanContent(contentHTML string) (string, error) {
	// コンバーターは並行利用を避けるため呼び出しごとに作る
	text, err := md.NewConverter("", true, nil).ConvertString(contentHTML)
	if err != nil {
		return "", fmt.Errorf("failed to convert content to text: %w", err)
	}

	// 空行を削除して行を連結
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	joined := strings.Join(lines, " ")

	runes := []rune(joined)
	if len(runes) > p.maxLength {
		runes = runes[:p.maxLength]
	}
	return string(runes), nil
}
