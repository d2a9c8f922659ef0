// =============================================================================
// market.go - フリマサイト中古相場の集計
// =============================================================================
//
// 商品名ごとに各フリマサイトをドメイン限定で検索し、結果のタイトル+
// スニペットから価格サンプルを集めて {件数, 最安, 中央値, 最高} に要約する。
//
// 【ベストエフォート方針】
//   - 検索に失敗したフリマサイトは黙ってスキップ（部分的な相場でも価値がある）
//   - サンプル0件のサイトはエントリ自体を出さない
//   - 同じ商品名は実行中キャッシュし再検索しない
//
// =============================================================================
package pipeline

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// MarketPriceCollector は商品名→中古相場の収集器
type MarketPriceCollector struct {
	search SearchFunc
	specs  []MarketplaceSpec
	cache  map[string][]MarketPriceSummary
	pacing time.Duration
}

// NewMarketPriceCollector は実ネットワークを使う収集器を作る
func NewMarketPriceCollector(cfg SourceConfig, specs []MarketplaceSpec) *MarketPriceCollector {
	return &MarketPriceCollector{
		search: NewDuckDuckGoSearcher(cfg),
		specs:  specs,
		cache:  map[string][]MarketPriceSummary{},
		pacing: lookupPacing,
	}
}

// Collect は商品名の中古相場を設定順のフリマサイトごとに集計する
func (mc *MarketPriceCollector) Collect(productName string, now time.Time) []MarketPriceSummary {
	outputs := []MarketPriceSummary{}

	for _, spec := range mc.specs {
		query := fmt.Sprintf("site:%s %s", spec.Domain, productName)
		results, err := mc.search(query, resultsPerMarketplaceQuery)
		if err != nil {
			// 相場は任意の付加情報なので、失敗したサイトはスキップ
			continue
		}

		var prices []int
		for _, item := range results {
			// 検索エンジンがsite:指定を無視してもドメイン外は採用しない
			if !strings.Contains(item.URL, spec.Domain) {
				continue
			}
			combined := CleanText(item.Title + " " + item.Snippet)
			prices = append(prices, ExtractPriceCandidates(combined, resalePriceMin, resalePriceMax)...)
		}

		if len(prices) == 0 {
			continue
		}

		sort.Ints(prices)
		outputs = append(outputs, MarketPriceSummary{
			Marketplace:    spec.Name,
			SearchURL:      BuildMarketSearchURL(spec.Name, productName),
			SampleCount:    len(prices),
			MinPriceYen:    prices[0],
			MedianPriceYen: medianInt(prices),
			MaxPriceYen:    prices[len(prices)-1],
			UpdatedAt:      now.Format(time.RFC3339),
		})

		if mc.pacing > 0 {
			time.Sleep(mc.pacing)
		}
	}

	return outputs
}

// EnrichReleases は各レコードに中古相場を付与する
//
// 同じ商品名は1回だけ検索する（実行中キャッシュ）。相場が1件でも付いた
// レコードには "中古相場" タグを追加する（既に付いている場合は重複させない）。
func (mc *MarketPriceCollector) EnrichReleases(releases []ReleaseRecord, now time.Time) {
	for i := range releases {
		productName := CleanText(releases[i].Title)
		if productName == "" {
			releases[i].MarketPrices = []MarketPriceSummary{}
			continue
		}

		summaries, ok := mc.cache[productName]
		if !ok {
			summaries = mc.Collect(productName, now)
			mc.cache[productName] = summaries
		}

		releases[i].MarketPrices = summaries
		if len(summaries) > 0 && !containsTag(releases[i].Tags, "中古相場") {
			releases[i].Tags = append(releases[i].Tags, "中古相場")
		}
	}
}

// BuildMarketSearchURL はフリマサイトの商品検索URLを決定論的に構築する
//
// 空白は "+" ではなく "%20" でエンコードする（Yahoo!フリマはパス部に
// キーワードを埋めるため、また過去に出力したURLとの互換のため）。
func BuildMarketSearchURL(marketplaceName, productName string) string {
	encoded := url.PathEscape(productName)
	switch marketplaceName {
	case "メルカリ":
		return "https://jp.mercari.com/search?keyword=" + encoded
	case "Yahoo!フリマ":
		return "https://paypayfleamarket.yahoo.co.jp/search/" + encoded
	}
	return "https://duckduckgo.com/?q=" + encoded
}

// medianInt はソート済みサンプルの中央値を返す
//
// 偶数件の場合は中央2値の平均の床（切り捨て）を採用する。
func medianInt(sorted []int) int {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// containsTag はタグ列に指定タグが含まれるかを返す
func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
