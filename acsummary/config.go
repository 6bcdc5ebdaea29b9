package acsummary

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config は acsummary の設定情報を保持する
type Config struct {
	Gemini   GeminiConfig   `yaml:"gemini"`
	HTTP     HTTPConfig     `yaml:"http"`
	Calendar CalendarConfig `yaml:"calendar"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

type GeminiConfig struct {
	APIKey           string `yaml:"api_key"`
	Model            string `yaml:"model"`
	RetryCount       int    `yaml:"retry_count"`
	RetryIntervalSec int    `yaml:"retry_interval_sec"`
	AnalysisPrompt   string `yaml:"analysis_prompt"`
}

type HTTPConfig struct {
	TimeoutSec int    `yaml:"timeout_sec"`
	UserAgent  string `yaml:"user_agent"`
}

type CalendarConfig struct {
	Year int `yaml:"year"`
}

type PipelineConfig struct {
	Concurrency      int `yaml:"concurrency"`
	MaxContentLength int `yaml:"max_content_length"`
}

const defaultAnalysisPrompt = `以下の技術ブログ記事を分析し、ジャンルと要約を生成してください。

記事タイトル: {{.Title}}
投稿者: {{.HandleName}}
投稿日: {{.Date}}
コメント: {{if .Comment}}{{.Comment}}{{else}}なし{{end}}

記事本文:
{{.Content}}

genre には記事の主なジャンル（技術カテゴリ）を1つ、
summary には記事の主要なポイントを300字程度の要約として出力してください。

ジャンルの例:
- プログラミング（Python, Go, JavaScriptなど）
- インフラ・運用（AWS, Docker, Kubernetes など）
- 機械学習・AI
- セキュリティ
- 開発手法・プロジェクト管理
- キャリア・組織
- ライフハック
- レビュー・トラブルシューティング
`

// DefaultConfig は設定ファイルなしで動作するデフォルト値を返します。
func DefaultConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model:            "gemini-2.0-flash",
			RetryCount:       3,
			RetryIntervalSec: 10,
			AnalysisPrompt:   defaultAnalysisPrompt,
		},
		HTTP: HTTPConfig{
			TimeoutSec: 30,
			UserAgent:  "acsummary/1.0 (+https://github.com/kotet/acsummary)",
		},
		Calendar: CalendarConfig{
			Year: 2024,
		},
		Pipeline: PipelineConfig{
			Concurrency:      4,
			MaxContentLength: 8000,
		},
	}
}

// LoadConfig は指定されたパスから設定ファイルを読み込み、Config構造体にパースします。
// ファイルに書かれていない項目はデフォルト値のまま残ります。
func LoadConfig(configPath string) (*Config, error) {
	configYAML, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	err = yaml.Unmarshal(configYAML, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
