package acsummary

import (
	"bytes"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ArticleEntry はカレンダーページから抽出した1エントリーの情報を表す
type ArticleEntry struct {
	Day        int
	HandleName string
	Title      string // Qiitaのみ。Adventarは記事ページから取得する
	Comment    string // Adventarのみ
	URL        string
}

// CalendarScraper はカレンダーページのパースを行うインターフェース
type CalendarScraper interface {
	// ParseCalendarPage はカレンダートップページのHTMLから、
	// 記事が投稿済みのエントリーを日付順に抽出します。
	ParseCalendarPage(html []byte) ([]ArticleEntry, error)
}

// NewCalendarScraper はURLのドメインに応じた適切なスクレイパーを生成します。
func NewCalendarScraper(calendarURL string) (CalendarScraper, error) {
	u, err := url.Parse(calendarURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar URL %s: %w", calendarURL, err)
	}

	host := u.Hostname()
	switch {
	case strings.Contains(host, "adventar.org"):
		return &AdventarScraper{baseURL: u}, nil
	case strings.Contains(host, "qiita.com"):
		return &QiitaScraper{baseURL: u}, nil
	default:
		return nil, fmt.Errorf("unsupported calendar domain: %s", host)
	}
}

// resolveURL は相対URLを絶対URLに解決します。
func resolveURL(baseURL *url.URL, ref string) string {
	rel, err := url.Parse(ref)
	if err != nil {
		return ref // パースできない場合はそのまま返す
	}
	return baseURL.ResolveReference(rel).String()
}

// AdventarScraper はAdventar形式のカレンダーに対応したスクレイパー
type AdventarScraper struct {
	baseURL *url.URL
}

// ParseCalendarPage はAdventarのカレンダーページからエントリー情報を抽出します。
// カレンダーのセル（td.cell）から日付ごとの登録者を集め、
// 記事リスト（li.item）からリンク済みの記事URLとコメントを対応付けます。
func (s *AdventarScraper) ParseCalendarPage(html []byte) ([]ArticleEntry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	cells := doc.Find("td.cell")
	if cells.Length() == 0 {
		return nil, fmt.Errorf("no calendar cells found: page structure may have changed")
	}

	handles := map[int]string{}
	cells.Each(func(_ int, cell *goquery.Selection) {
		day, err := strconv.Atoi(strings.TrimSpace(cell.Find(".day").Text()))
		if err != nil {
			return // 空のセル
		}
		handle := strings.TrimSpace(cell.Find(".userName").Text())
		if handle == "" {
			return
		}
		handles[day] = handle
	})

	var entries []ArticleEntry
	doc.Find("li.item").Each(func(_ int, item *goquery.Selection) {
		// 日付は "12/3" 形式
		dateText := strings.TrimSpace(item.Find(".date").Text())
		parts := strings.Split(dateText, "/")
		day, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return
		}

		handle, ok := handles[day]
		if !ok {
			return
		}

		// リンクが存在する場合のみ記事が投稿されている
		href, exists := item.Find(".link a").First().Attr("href")
		if !exists || href == "" {
			return
		}

		entries = append(entries, ArticleEntry{
			Day:        day,
			HandleName: handle,
			Comment:    strings.TrimSpace(item.Find(".comment").Text()),
			URL:        resolveURL(s.baseURL, href),
		})
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Day < entries[j].Day
	})

	if len(entries) == 0 {
		pkgLogger.Warn("No posted articles found in calendar", "url", s.baseURL.String())
	}

	return entries, nil
}

// QiitaScraper はQiita Advent Calendar形式のカレンダーに対応したスクレイパー
type QiitaScraper struct {
	baseURL *url.URL
}

// ParseCalendarPage はQiitaのカレンダーページからエントリー情報を抽出します。
// Qiitaのマークアップはハッシュ付きのstyle-*クラスで構成されているため、
// クラス名が変わるとパースに失敗します。
func (s *QiitaScraper) ParseCalendarPage(html []byte) ([]ArticleEntry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	section := doc.Find("section.style-t7g594").First()
	if section.Length() == 0 {
		return nil, fmt.Errorf("calendar section not found: page structure may have changed")
	}

	table := section.Find("table.style-1lopqp4").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("calendar table not found: page structure may have changed")
	}

	var entries []ArticleEntry
	table.Find("tbody tr.style-8kv4rj").Each(func(rowIndex int, row *goquery.Selection) {
		row.Find("td.style-1dw8kp9").Each(func(cellIndex int, cell *goquery.Selection) {
			container := cell.Find("div.style-176zglo").First()
			if container.Length() == 0 {
				return
			}

			articleLink := container.Find("a.style-14mbwqe").First()
			href, exists := articleLink.Attr("href")
			if !exists || href == "" {
				return // 記事未投稿
			}

			authorLink := container.Find("a.style-zfknvc").First()
			if authorLink.Length() == 0 {
				return
			}

			// 行と列の位置から日付を計算（1行=1週間）
			day := rowIndex*7 + cellIndex + 1

			entries = append(entries, ArticleEntry{
				Day:        day,
				HandleName: strings.ReplaceAll(strings.TrimSpace(authorLink.Text()), "@", ""),
				Title:      strings.TrimSpace(articleLink.Text()),
				URL:        resolveURL(s.baseURL, href),
			})
		})
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Day < entries[j].Day
	})

	if len(entries) == 0 {
		pkgLogger.Warn("No posted articles found in calendar", "url", s.baseURL.String())
	}

	return entries, nil
}
