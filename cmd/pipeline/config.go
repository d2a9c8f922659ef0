// =============================================================================
// config.go - CLIフラグ解析
// =============================================================================
//
// このファイルはCLIフラグの解析と設定管理を行います。
//
// 【設定グループ】
//   - OutputConfig:  出力先設定
//   - RunConfig:     収集の実行設定
//
// =============================================================================
package main

import (
	"flag"
	"os"
)

// CLIConfig はCLIの全設定を保持する
type CLIConfig struct {
	Output OutputConfig
	Run    RunConfig
}

// OutputConfig は出力に関する設定
type OutputConfig struct {
	// DataRoot はデータディレクトリ群を作るルートパス
	DataRoot string

	// NotionClip がtrueの場合、Notionにも保存
	NotionClip bool

	// NotionPageID は新規データベース作成時の親ページID
	NotionPageID string

	// NotionDatabaseID は既存のデータベースID
	NotionDatabaseID string
}

// RunConfig は収集の実行に関する設定
type RunConfig struct {
	// SkipMarket がtrueの場合、中古相場の付与をスキップ（高速実行）
	SkipMarket bool

	// EnrichLimit はoEmbedで本文を補完する投稿数
	EnrichLimit int
}

// ParseFlags はCLIフラグを解析してCLIConfigを返す
func ParseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Output flags
	flag.StringVar(&cfg.Output.DataRoot, "dataRoot", ".", "root directory under which data/, assets/data/, web/data/ are written")
	flag.BoolVar(&cfg.Output.NotionClip, "notionClip", false, "clip release records to Notion database")
	flag.StringVar(&cfg.Output.NotionPageID, "notionPageID", os.Getenv("NOTION_PAGE_ID"), "parent page ID for creating new Notion database")
	flag.StringVar(&cfg.Output.NotionDatabaseID, "notionDatabaseID", os.Getenv("NOTION_DATABASE_ID"), "existing Notion database ID")

	// Run flags
	flag.BoolVar(&cfg.Run.SkipMarket, "skipMarket", false, "skip marketplace price enrichment")
	flag.IntVar(&cfg.Run.EnrichLimit, "enrichLimit", 25, "max posts to enrich with oEmbed content")

	flag.Parse()
	return cfg
}
