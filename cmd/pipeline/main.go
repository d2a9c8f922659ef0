// =============================================================================
// main.go - Gacha Relay パイプラインのエントリーポイント
// =============================================================================
//
// このプログラムは、カプセルトイ新商品の発見・抽出・相場付与・JSON出力を
// 自動化するCLIツールです。
//
// =============================================================================
// 【処理フロー】
// =============================================================================
//
//   ┌─────────────┐    ┌─────────────┐    ┌─────────────┐
//   │  1. 設定    │ -> │  2. 収集    │ -> │  3. 抽出    │
//   │  読み込み   │    │  検索/RSS   │    │  日付/価格  │
//   └─────────────┘    └─────────────┘    └─────────────┘
//          │                  │                  │
//          v                  v                  v
//   .env読み込み        メーカー5社 +      発売日・価格・
//   CLIフラグ解析       Xキーワード5件     シリーズの抽出
//
//   ┌─────────────┐    ┌─────────────┐    ┌─────────────┐
//   │  4. 相場    │ -> │  5. 出力    │ -> │  6. 配信    │
//   │  フリマ検索 │    │  JSON生成   │    │  Notion(任意)│
//   └─────────────┘    └─────────────┘    └─────────────┘
//          │                  │                  │
//          v                  v                  v
//   中古価格の集計       3ディレクトリへ     Notionクリップ
//   （メルカリ等）       ファンアウト        （-notionClip）
//
// =============================================================================
// 【CLIフラグ一覧】
// =============================================================================
//
// ▼ 出力設定
//   -dataRoot         データディレクトリ群のルート（デフォルト: カレント）
//   -notionClip       Notionデータベースにも保存
//   -notionPageID     新規DB作成時の親ページID（環境変数NOTION_PAGE_ID）
//   -notionDatabaseID 既存のデータベースID（環境変数NOTION_DATABASE_ID）
//
// ▼ 実行設定
//   -skipMarket       中古相場の付与をスキップ
//   -enrichLimit      oEmbedで本文補完する投稿数（デフォルト: 25）
//
// =============================================================================
// 【初心者向けポイント】
// =============================================================================
//
// - flag パッケージでCLI引数を解析
// - godotenv パッケージで.envファイルを読み込み
// - 収集が全滅しても前回データ→シードの順でフォールバックし、終了コードは0
// - 処理の進捗は標準エラー出力、最終件数のみ標準出力
//
// =============================================================================
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv" // .env ファイル読み込み

	"gacha-relay/internal/pipeline"
)

func main() {
	// .env ファイルから環境変数を読み込み
	// ファイルが存在しない場合はログを出力するが、処理は続行する
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "INFO: .env file not loaded: %v (using environment variables only)\n", err)
	}

	cfg := ParseFlags()

	// --- 1) 前回データの読み込み（フォールバック用） ---
	previousReleases := pipeline.ReadPreviousReleases(cfg.Output.DataRoot)
	previousPosts := pipeline.ReadPreviousPosts(cfg.Output.DataRoot)

	// --- 2) パイプライン実行 ---
	opts := pipeline.DefaultRunOptions()
	opts.SkipMarket = cfg.Run.SkipMarket
	opts.EnrichLimit = cfg.Run.EnrichLimit
	result := pipeline.Run(opts)

	// --- 3) フォールバック適用 ---
	// 収集が空でも、前回データかシードがある限り出力は空にならない
	releases := pipeline.FallbackReleases(result.Releases, previousReleases)
	posts := pipeline.FallbackPosts(result.Posts, previousPosts)

	// --- 4) 全出力先へ書き出し ---
	pipeline.SavePayload(cfg.Output.DataRoot, pipeline.ReleasesFileName, releases)
	pipeline.SavePayload(cfg.Output.DataRoot, pipeline.PostsFileName, posts)

	// --- 5) Notionクリップ（任意） ---
	if cfg.Output.NotionClip {
		clipToNotion(cfg, releases)
	}

	fmt.Printf("saved releases: %d\n", len(releases))
	fmt.Printf("saved x posts: %d\n", len(posts))
}

// clipToNotion はレコードをNotionデータベースに保存する
//
// データベースIDが未指定の場合は親ページ配下に新規作成する。
// 失敗してもパイプライン自体は成功扱い（JSON出力は完了している）。
func clipToNotion(cfg *CLIConfig, releases []pipeline.ReleaseRecord) {
	token := os.Getenv("NOTION_TOKEN")
	if token == "" {
		fmt.Fprintln(os.Stderr, "WARN: NOTION_TOKEN not set, skipping Notion clip")
		return
	}

	clipper, err := pipeline.NewNotionClipper(token, cfg.Output.NotionDatabaseID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARN: creating Notion clipper: %v\n", err)
		return
	}

	ctx := context.Background()

	if cfg.Output.NotionDatabaseID == "" {
		if cfg.Output.NotionPageID == "" {
			fmt.Fprintln(os.Stderr, "WARN: -notionPageID is required when creating a new Notion database, skipping")
			return
		}
		dbID, err := clipper.CreateDatabase(ctx, cfg.Output.NotionPageID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARN: creating Notion database: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "Add to .env for future runs:\nNOTION_DATABASE_ID=%s\n", dbID)
	}

	clipped := clipper.ClipReleases(ctx, releases)
	fmt.Fprintf(os.Stderr, "clipped %d releases to Notion\n", clipped)
}
