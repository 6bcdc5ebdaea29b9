package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/kotet/acsummary/acsummary"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:      "acsummary",
		Usage:     "アドベントカレンダーの記事を要約してCSVに出力する",
		ArgsUsage: "<calendar_url> <output_csv>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "api-key",
				Usage:    "Gemini API Key",
				EnvVars:  []string{"GEMINI_API_KEY"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "設定ファイル（YAML）のパス",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "並行して処理するエントリー数",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "デバッグログを出力する",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("acsummary failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected 2 arguments: <calendar_url> <output_csv>")
	}
	calendarURL := c.Args().Get(0)
	outputPath := c.Args().Get(1)

	if c.Bool("verbose") {
		acsummary.SetLogLevel(slog.LevelDebug)
	}

	config := acsummary.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		config, err = acsummary.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}
	config.Gemini.APIKey = c.String("api-key")
	if n := c.Int("concurrency"); n > 0 {
		config.Pipeline.Concurrency = n
	}

	summarizer, err := acsummary.NewACSummary(c.Context, config)
	if err != nil {
		return err
	}

	return summarizer.Run(c.Context, calendarURL, outputPath)
}
