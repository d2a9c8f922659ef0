// =============================================================================
// run.go - パイプライン実行の制御フロー
// =============================================================================
//
// CLI（cmd/pipeline）とLambda（cmd/lambda/collect）の両方から呼ばれる
// 実行本体。収集 → 相場付与 → 整列 → 件数制限 までを行う。
// フォールバックとファイル出力は呼び出し元の責務（Lambdaはファイルを
// 書かずNotionに送るため）。
//
// =============================================================================
package pipeline

import "time"

// RunOptions は1回の実行の設定
type RunOptions struct {
	Source        SourceConfig
	Manufacturers []ManufacturerSpec
	Keywords      []string
	Marketplaces  []MarketplaceSpec

	// SkipMarket がtrueの場合、中古相場の付与を行わない（高速実行用）
	SkipMarket bool

	// EnrichLimit はoEmbedで本文を補完する投稿数（0以下でデフォルト値）
	EnrichLimit int
}

// DefaultRunOptions は本番の収集対象一式を設定した実行オプションを返す
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Source:        DefaultSourceConfig(),
		Manufacturers: DefaultManufacturerQueries,
		Keywords:      DefaultXKeywords,
		Marketplaces:  DefaultMarketplaceSpecs,
		EnrichLimit:   defaultEnrichLimit,
	}
}

// RunResult は1回の実行の収集結果
type RunResult struct {
	Releases []ReleaseRecord
	Posts    []SocialPost
}

// Run はパイプライン全体を逐次実行する
//
// 基準時刻 "now" はここで1回だけ取得し、実行中の全ての日付計算に使う。
// 発売日まわりはJST、投稿時刻はUTCで扱う（元データの出力契約に合わせる）。
func Run(opts RunOptions) RunResult {
	if opts.EnrichLimit <= 0 {
		opts.EnrichLimit = defaultEnrichLimit
	}

	// --- 1) メーカー検索 → 新商品レコード ---
	nowJST := time.Now().In(jst)
	releases := NewReleaseCollector(opts.Source, opts.Manufacturers).Collect(nowJST)
	infof("collected %d releases", len(releases))

	// --- 2) 中古相場の付与 ---
	if !opts.SkipMarket {
		NewMarketPriceCollector(opts.Source, opts.Marketplaces).EnrichReleases(releases, nowJST)
	}

	// --- 3) 整列と件数制限 ---
	SortReleases(releases)
	if len(releases) > MaxReleases {
		releases = releases[:MaxReleases]
	}

	// --- 4) キーワード検索 → X投稿（独立した経路） ---
	nowUTC := time.Now().UTC()
	social := NewSocialCollector(opts.Source, opts.Keywords)
	posts := social.Collect(nowUTC)
	infof("collected %d posts", len(posts))

	SortPosts(posts)
	social.EnrichPosts(posts, opts.EnrichLimit)
	if len(posts) > MaxPosts {
		posts = posts[:MaxPosts]
	}

	return RunResult{Releases: releases, Posts: posts}
}
