package acsummary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "resources", name))
	require.NoError(t, err, "Failed to read fixture: %s", name)
	return data
}

func TestNewCalendarScraper(t *testing.T) {
	testCases := []struct {
		name        string
		calendarURL string
		expectType  interface{}
		expectError bool
	}{
		{
			name:        "adventar URL",
			calendarURL: "https://adventar.org/calendars/9999",
			expectType:  &AdventarScraper{},
		},
		{
			name:        "qiita URL",
			calendarURL: "https://qiita.com/advent-calendar/2024/fuga-dev",
			expectType:  &QiitaScraper{},
		},
		{
			name:        "unsupported domain",
			calendarURL: "https://example.com/calendar",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scraper, err := NewCalendarScraper(tc.calendarURL)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.expectType, scraper)
		})
	}
}

func TestAdventarScraper_ParseCalendarPage(t *testing.T) {
	html := readFixture(t, "adventar_calendar.html")

	scraper, err := NewCalendarScraper("https://adventar.org/calendars/9999")
	require.NoError(t, err)

	entries, err := scraper.ParseCalendarPage(html)
	require.NoError(t, err)
	// 3日目はリンク未登録なので含まれない
	require.Len(t, entries, 2)

	// カレンダー上の記述順に関わらず日付順で返る
	assert.Equal(t, 1, entries[0].Day)
	assert.Equal(t, "alice", entries[0].HandleName)
	assert.Equal(t, "Goのジェネリクスの話を書きます", entries[0].Comment)
	assert.Equal(t, "https://blog.example.com/alice/go-generics", entries[0].URL)

	assert.Equal(t, 2, entries[1].Day)
	assert.Equal(t, "bob", entries[1].HandleName)
	assert.Empty(t, entries[1].Comment)
	// 相対URLはカレンダーURLを基準に解決される
	assert.Equal(t, "https://adventar.org/go_to_external?url=https%3A%2F%2Fblog.example.net%2Fbob%2Fsre-oncall", entries[1].URL)
}

func TestAdventarScraper_ParseCalendarPage_NoCells(t *testing.T) {
	scraper, err := NewCalendarScraper("https://adventar.org/calendars/9999")
	require.NoError(t, err)

	_, err = scraper.ParseCalendarPage([]byte("<html><body><p>not a calendar</p></body></html>"))
	assert.Error(t, err, "Parse should fail when the calendar cells are missing")
}

func TestAdventarScraper_ParseCalendarPage_Deterministic(t *testing.T) {
	html := readFixture(t, "adventar_calendar.html")

	scraper, err := NewCalendarScraper("https://adventar.org/calendars/9999")
	require.NoError(t, err)

	first, err := scraper.ParseCalendarPage(html)
	require.NoError(t, err)
	second, err := scraper.ParseCalendarPage(html)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQiitaScraper_ParseCalendarPage(t *testing.T) {
	html := readFixture(t, "qiita_calendar.html")

	scraper, err := NewCalendarScraper("https://qiita.com/advent-calendar/2024/fuga-dev")
	require.NoError(t, err)

	entries, err := scraper.ParseCalendarPage(html)
	require.NoError(t, err)
	// 2日目は登録のみで記事リンクがないため含まれない
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Day)
	assert.Equal(t, "taro", entries[0].HandleName, "handle should not contain @")
	assert.Equal(t, "社内Kubernetesクラスタを作り直した話", entries[0].Title)
	assert.Equal(t, "https://qiita.com/taro/items/0123456789abcdef0123", entries[0].URL)

	// 2行目の先頭セルは8日目
	assert.Equal(t, 8, entries[1].Day)
	assert.Equal(t, "hanako", entries[1].HandleName)
	assert.Equal(t, "GitHub Actionsでリリース作業を自動化する", entries[1].Title)
	assert.Equal(t, "https://qiita.com/hanako/items/fedcba9876543210fedc", entries[1].URL)
}

func TestQiitaScraper_ParseCalendarPage_MissingStructure(t *testing.T) {
	scraper, err := NewCalendarScraper("https://qiita.com/advent-calendar/2024/fuga-dev")
	require.NoError(t, err)

	t.Run("missing section", func(t *testing.T) {
		_, err := scraper.ParseCalendarPage([]byte("<html><body><main></main></body></html>"))
		assert.Error(t, err)
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := scraper.ParseCalendarPage([]byte(`<html><body><section class="style-t7g594"></section></body></html>`))
		assert.Error(t, err)
	})
}
