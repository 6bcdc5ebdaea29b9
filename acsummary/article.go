package acsummary

import "time"

// ArticleStatus は記事の処理結果を表す
type ArticleStatus int

const (
	StatusSuccess ArticleStatus = iota // 0: success（要約まで完了）
	StatusFailed                       // 1: failed（取得または要約に失敗）
)

func (s ArticleStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Article はカレンダーの1エントリーとその処理結果を保持する構造体
type Article struct {
	Date       time.Time
	Day        int
	HandleName string
	Title      string
	Comment    string // カレンダー登録時のひとことコメント（Adventarのみ）
	Genre      string
	Summary    string
	URL        string
	Content    string // 取得した記事本文（プレーンテキスト）
	Status     ArticleStatus
}
