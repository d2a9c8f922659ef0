// =============================================================================
// config.go - パイプライン設定とクエリ定義
// =============================================================================
//
// このファイルは収集対象（メーカー・キーワード・フリマサイト）の定義と、
// HTTP設定・実行時の上限/ペーシング定数を提供します。
//
// 【設定の考え方】
//   - 収集対象はコードではなくデータ（スライス）として持つ
//   - 新メーカーの追加は DefaultManufacturerQueries に1要素足すだけ
//
// =============================================================================
package pipeline

import (
	"net/http"
	"time"
)

// =============================================================================
// HTTP設定
// =============================================================================

// SourceConfig は外部リクエスト時の共通設定を保持
type SourceConfig struct {
	UserAgent string        // HTTPリクエスト時のUser-Agentヘッダー
	Timeout   time.Duration // HTTPリクエストのタイムアウト時間
	Client    *http.Client  // 共有HTTPクライアント（コネクションプーリング有効）
}

// DefaultSourceConfig はデフォルトの収集設定を返す
func DefaultSourceConfig() SourceConfig {
	timeout := 20 * time.Second
	return SourceConfig{
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) " +
			"Chrome/122.0.0.0 Safari/537.36",
		Timeout: timeout,
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// =============================================================================
// 収集対象の定義
// =============================================================================

// ManufacturerSpec はメーカー1社分の検索仕様
type ManufacturerSpec struct {
	Manufacturer string // メーカー名（レコードに記録される）
	SourceLabel  string // 出典表示名
	Domain       string // 結果をこのドメインに限定する
	Query        string // DuckDuckGoに投げる検索クエリ（site:演算子付き）
	FeedURL      string // 新着情報RSS（無いメーカーは空文字）
}

// DefaultManufacturerQueries は収集対象メーカーの一覧
//
// Domain は検索結果のフィルタリングに使用する（site:指定が無視されても
// 他ドメインの結果を混入させないための防御）。
var DefaultManufacturerQueries = []ManufacturerSpec{
	{
		Manufacturer: "BANDAI",
		SourceLabel:  "BANDAI ガシャポン",
		Domain:       "gashapon.jp",
		Query:        "site:gashapon.jp ガシャポン 新商品",
	},
	{
		Manufacturer: "タカラトミーアーツ",
		SourceLabel:  "タカラトミーアーツ",
		Domain:       "takaratomy-arts.co.jp",
		Query:        "site:takaratomy-arts.co.jp ガチャ 新商品",
	},
	{
		Manufacturer: "ケンエレファント",
		SourceLabel:  "ケンエレファント",
		Domain:       "kenelephant.co.jp",
		Query:        "site:kenelephant.co.jp カプセルトイ 新作",
		FeedURL:      "https://kenelephant.co.jp/feed/",
	},
	{
		Manufacturer: "スタンド・ストーンズ",
		SourceLabel:  "スタンド・ストーンズ",
		Domain:       "stasto.co.jp",
		Query:        "site:stasto.co.jp カプセルトイ 新商品",
		FeedURL:      "https://stasto.co.jp/feed/",
	},
	{
		Manufacturer: "エール",
		SourceLabel:  "エール",
		Domain:       "yell-world.jp",
		Query:        "site:yell-world.jp ガチャ 新商品",
	},
}

// DefaultXKeywords はX投稿収集に使うリアルタイム検索キーワード
var DefaultXKeywords = []string{
	"ガシャポン 新商品",
	"ガチャ 新作",
	"カプセルトイ 新商品",
	"たまごっち ガチャ",
	"サンリオ ガチャ 新作",
}

// MarketplaceSpec はフリマサイト1つ分の検索仕様
type MarketplaceSpec struct {
	Name   string // 表示名
	Domain string // 結果をこのドメインに限定する
}

// DefaultMarketplaceSpecs は中古相場の参照先フリマサイト一覧
var DefaultMarketplaceSpecs = []MarketplaceSpec{
	{Name: "メルカリ", Domain: "jp.mercari.com"},
	{Name: "Yahoo!フリマ", Domain: "paypayfleamarket.yahoo.co.jp"},
}

// =============================================================================
// 上限・レンジ・ペーシング定数
// =============================================================================

const (
	// 1回の実行で出力する最大件数（ソート後に切り詰め）
	MaxReleases = 200
	MaxPosts    = 300

	// 検索1回あたりの結果取得数
	resultsPerManufacturerQuery = 12
	resultsPerMarketplaceQuery  = 10
	maxStatusURLsPerKeyword     = 40

	// oEmbedで本文を取得する投稿数の上限（新しい順）
	defaultEnrichLimit = 25

	// 商品定価の妥当レンジ（カプセルトイ価格帯）
	productPriceMin = 100
	productPriceMax = 3000

	// 中古相場の妥当レンジ（転売価格帯。定価レンジを流用すると高額落札を
	// 取りこぼすため、意図的に広くしてある）
	resalePriceMin = 100
	resalePriceMax = 50000

	// 外部サービスへの連続リクエスト間に挟む固定ウェイト
	queryPacing  = 500 * time.Millisecond // 検索クエリ間
	lookupPacing = 350 * time.Millisecond // フリマ検索・oEmbed呼び出し間
)

// jst は発売日計算に使う固定の日本標準時
var jst = time.FixedZone("JST", 9*60*60)
