package acsummary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// PageFetcher はWebページの取得を行うクライアント
type PageFetcher struct {
	client    *http.Client
	userAgent string
}

// NewPageFetcher は新しいPageFetcherインスタンスを作成します。
func NewPageFetcher(config *HTTPConfig) *PageFetcher {
	return &PageFetcher{
		client: &http.Client{
			Timeout: time.Duration(config.TimeoutSec) * time.Second,
		},
		userAgent: config.UserAgent,
	}
}

// Fetch は指定されたURLのページを取得し、UTF-8に変換したHTMLを返します。
// 文字コードはContent-Typeヘッダとmetaタグから判定します。
func (f *PageFetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get HTML from %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get HTML from %s: status code %d", pageURL, resp.StatusCode)
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to detect charset for %s: %w", pageURL, err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
