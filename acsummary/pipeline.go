package acsummary

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// ArticleAnalyzer は記事の分析を行うインターフェース
type ArticleAnalyzer interface {
	AnalyzeArticle(ctx context.Context, article *Article) (AnalysisResult, error)
}

// genreUncategorized は分析できなかった記事に割り当てるジャンル
const genreUncategorized = "未分類"

// テストで差し替えられるようにしている
var newCalendarScraper = NewCalendarScraper

// ACSummary はカレンダーの収集から要約・CSV出力までを統括する
type ACSummary struct {
	fetcher   *PageFetcher
	processor *ContentProcessor
	analyzer  ArticleAnalyzer
	config    *Config
}

// NewACSummary は新しいACSummaryインスタンスを作成します。
func NewACSummary(ctx context.Context, config *Config) (*ACSummary, error) {
	genAIClient, err := NewGenAIClient(ctx, &config.Gemini)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	fetcher := NewPageFetcher(&config.HTTP)

	return &ACSummary{
		fetcher:   fetcher,
		processor: NewContentProcessor(fetcher, config.Pipeline.MaxContentLength),
		analyzer:  genAIClient,
		config:    config,
	}, nil
}

// Run はカレンダーの取得から要約・CSV出力までの一連の処理を実行します。
// カレンダー自体の取得・パース失敗は即時エラーになりますが、
// 個々の記事の失敗は failed として記録され、処理は継続します。
func (a *ACSummary) Run(ctx context.Context, calendarURL string, outputPath string) error {
	pkgLogger.Info("Start processing calendar", "url", calendarURL)

	scraper, err := newCalendarScraper(calendarURL)
	if err != nil {
		return err
	}

	html, err := a.fetcher.Fetch(ctx, calendarURL)
	if err != nil {
		return fmt.Errorf("failed to fetch calendar page: %w", err)
	}

	entries, err := scraper.ParseCalendarPage(html)
	if err != nil {
		return fmt.Errorf("failed to parse calendar page: %w", err)
	}
	pkgLogger.Info("Collected entries", "count", len(entries))

	articles := a.processEntries(ctx, entries)

	if err := WriteArticles(articles, outputPath); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	pkgLogger.Info("Finish processing calendar", "output", outputPath, "count", len(articles))
	return nil
}

// processEntries は各エントリーの記事取得と分析を並行して実行します。
// 完了順に関係なく、結果はカレンダーの日付順のまま返されます。
func (a *ACSummary) processEntries(ctx context.Context, entries []ArticleEntry) []*Article {
	articles := make([]*Article, len(entries))

	concurrency := a.config.Pipeline.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	g := &errgroup.Group{}
	g.SetLimit(concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			article := a.newArticle(entry)
			if err := a.processArticle(ctx, article); err != nil {
				pkgLogger.Error("Failed to process entry", "day", entry.Day, "url", entry.URL, "error", err)
				article.Status = StatusFailed
				article.Genre = genreUncategorized
				article.Summary = ""
			}
			articles[i] = article
			return nil
		})
	}
	// ワーカーは常に nil を返すのでエラーは発生しない
	_ = g.Wait()

	return articles
}

func (a *ACSummary) newArticle(entry ArticleEntry) *Article {
	return &Article{
		Date:       time.Date(a.config.Calendar.Year, time.December, entry.Day, 0, 0, 0, 0, time.UTC),
		Day:        entry.Day,
		HandleName: entry.HandleName,
		Title:      entry.Title,
		Comment:    entry.Comment,
		URL:        entry.URL,
		Status:     StatusSuccess,
	}
}

func (a *ACSummary) processArticle(ctx context.Context, article *Article) error {
	if err := a.processor.FetchContent(ctx, article); err != nil {
		return fmt.Errorf("failed to fetch article content: %w", err)
	}

	result, err := a.analyzer.AnalyzeArticle(ctx, article)
	if err != nil {
		return fmt.Errorf("failed to analyze article: %w", err)
	}

	article.Genre = result.Genre
	article.Summary = result.Summary
	pkgLogger.Info("Article analyzed", "day", article.Day, "title", article.Title)
	return nil
}
