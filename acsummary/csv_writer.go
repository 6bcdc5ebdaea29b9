package acsummary

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

var csvHeader = []string{"date", "handle_name", "title", "genre", "summary", "url", "status"}

// WriteArticles は記事情報をCSVファイルに出力します。
// 行の並びは articles の並びのまま書き出されます。
func WriteArticles(articles []*Article, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, article := range articles {
		record := []string{
			article.Date.Format("2006-01-02"),
			article.HandleName,
			article.Title,
			article.Genre,
			article.Summary,
			article.URL,
			article.Status.String(),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record for %s: %w", article.URL, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}
