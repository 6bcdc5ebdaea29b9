package acsummary

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticles() []*Article {
	return []*Article{
		{
			Date:       time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			Day:        1,
			HandleName: "alice",
			Title:      "Goのジェネリクスで型安全なキャッシュを書く",
			Genre:      "プログラミング",
			Summary:    "ジェネリクスを使ったキャッシュ実装の紹介。",
			URL:        "https://blog.example.com/alice/go-generics",
			Status:     StatusSuccess,
		},
		{
			Date:       time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC),
			Day:        2,
			HandleName: "bob",
			Title:      "",
			Genre:      "未分類",
			Summary:    "",
			URL:        "https://blog.example.net/bob/sre-oncall",
			Status:     StatusFailed,
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteArticles(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "out.csv")

	err := WriteArticles(testArticles(), outputPath)
	require.NoError(t, err)

	records := readCSV(t, outputPath)
	// ヘッダー + 記事数
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])

	assert.Equal(t, []string{
		"2024-12-01",
		"alice",
		"Goのジェネリクスで型安全なキャッシュを書く",
		"プログラミング",
		"ジェネリクスを使ったキャッシュ実装の紹介。",
		"https://blog.example.com/alice/go-generics",
		"success",
	}, records[1])

	// 失敗した記事は要約が空・ジャンルが未分類のままfailedとして出力される
	assert.Equal(t, []string{
		"2024-12-02",
		"bob",
		"",
		"未分類",
		"",
		"https://blog.example.net/bob/sre-oncall",
		"failed",
	}, records[2])
}

func TestWriteArticles_Empty(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "out.csv")

	err := WriteArticles(nil, outputPath)
	require.NoError(t, err)

	records := readCSV(t, outputPath)
	require.Len(t, records, 1, "Only the header row should be written")
	assert.Equal(t, csvHeader, records[0])
}

func TestWriteArticles_CreatesParentDirectory(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "nested", "dir", "out.csv")

	err := WriteArticles(testArticles(), outputPath)
	require.NoError(t, err)

	_, err = os.Stat(outputPath)
	assert.NoError(t, err)
}

func TestWriteArticles_Idempotent(t *testing.T) {
	dir := t.TempDir()
	firstPath := filepath.Join(dir, "first.csv")
	secondPath := filepath.Join(dir, "second.csv")

	articles := testArticles()
	require.NoError(t, WriteArticles(articles, firstPath))
	require.NoError(t, WriteArticles(articles, secondPath))

	first, err := os.ReadFile(firstPath)
	require.NoError(t, err)
	second, err := os.ReadFile(secondPath)
	require.NoError(t, err)
	assert.Equal(t, first, second, "Repeated writes should be byte-identical")
}
