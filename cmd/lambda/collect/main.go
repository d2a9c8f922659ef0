// =============================================================================
// Lambda: collect-releases
// =============================================================================
//
// 新商品とX投稿を収集し、新商品をNotion DBに保存するLambda関数。
// スケジュール実行（EventBridge）を想定。ファイル出力は行わない。
//
// 環境変数:
//   - NOTION_TOKEN:       Notion API Token (必須)
//   - NOTION_DATABASE_ID: NotionデータベースID (必須)
//   - SKIP_MARKET:        "1" で中古相場の付与をスキップ (任意)
//   - ENRICH_LIMIT:       oEmbedで本文補完する投稿数 (デフォルト: 25)
//
// =============================================================================
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/lambda"

	"gacha-relay/internal/pipeline"
)

// LambdaConfig は環境変数から読み込む設定
type LambdaConfig struct {
	NotionToken      string
	NotionDatabaseID string
	SkipMarket       bool
	EnrichLimit      int
}

// Response はLambdaレスポンス
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Releases   int    `json:"releases"`
	Posts      int    `json:"posts"`
	Clipped    int    `json:"clipped"`
}

// Handler はLambdaのメインハンドラー
func Handler(ctx context.Context, event interface{}) (Response, error) {
	log.Println("Starting collect-releases Lambda...")

	cfg := loadConfig()

	if cfg.NotionToken == "" {
		return Response{StatusCode: 400, Message: "NOTION_TOKEN is required"}, fmt.Errorf("NOTION_TOKEN is required")
	}
	if cfg.NotionDatabaseID == "" {
		return Response{StatusCode: 400, Message: "NOTION_DATABASE_ID is required"}, fmt.Errorf("NOTION_DATABASE_ID is required")
	}

	log.Printf("Config: skipMarket=%v, enrichLimit=%d", cfg.SkipMarket, cfg.EnrichLimit)

	// 1. 収集パイプラインの実行
	opts := pipeline.DefaultRunOptions()
	opts.SkipMarket = cfg.SkipMarket
	opts.EnrichLimit = cfg.EnrichLimit
	result := pipeline.Run(opts)

	log.Printf("Collected %d releases, %d posts", len(result.Releases), len(result.Posts))

	// 2. Notionに保存
	clipper, err := pipeline.NewNotionClipper(cfg.NotionToken, cfg.NotionDatabaseID)
	if err != nil {
		log.Printf("Error creating Notion clipper: %v", err)
		return Response{StatusCode: 500, Message: err.Error(), Releases: len(result.Releases)}, err
	}

	clipped := clipper.ClipReleases(ctx, result.Releases)
	log.Printf("Clipped %d releases to Notion", clipped)

	return Response{
		StatusCode: 200,
		Message:    fmt.Sprintf("Successfully collected %d releases, clipped %d to Notion", len(result.Releases), clipped),
		Releases:   len(result.Releases),
		Posts:      len(result.Posts),
		Clipped:    clipped,
	}, nil
}

// loadConfig は環境変数から設定を読み込む
func loadConfig() LambdaConfig {
	enrichLimit := 25
	if el := os.Getenv("ENRICH_LIMIT"); el != "" {
		if val, err := strconv.Atoi(el); err == nil && val > 0 {
			enrichLimit = val
		}
	}

	return LambdaConfig{
		NotionToken:      os.Getenv("NOTION_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		SkipMarket:       os.Getenv("SKIP_MARKET") == "1",
		EnrichLimit:      enrichLimit,
	}
}

func main() {
	lambda.Start(Handler)
}
