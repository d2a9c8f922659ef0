// =============================================================================
// releases.go - 新商品レコードの構築と収集
// =============================================================================
//
// メーカーごとの検索クエリ（+任意のRSSフィード）から候補URLを集め、
// ドメイン・商品URL・到達性のフィルタを通過したものを1件ずつ
// ReleaseRecord に構築します。
//
// 【処理フロー】
//
//	検索/フィード → ドメイン限定 → 商品URL判定 → 到達性チェック
//	  → URL重複排除 → レコード構築（日付・価格・シリーズ抽出）
//
// 失敗したクエリ・フィードはその単位だけスキップし、実行全体は止めない。
//
// =============================================================================
package pipeline

import (
	"strings"
	"time"
)

// BuildReleaseEntry は検索結果1件から新商品レコードを構築する
//
// タイトルとスニペットを結合・正規化したテキストに対して日付抽出・価格抽出・
// シリーズ判定を実行する。ネットワークアクセスは行わない純粋な構築処理。
func BuildReleaseEntry(item SearchResult, spec ManufacturerSpec, now time.Time) ReleaseRecord {
	combined := CleanText(item.Title + " " + item.Snippet)

	record := ReleaseRecord{
		ID:           buildID("rel", item.URL),
		Title:        item.Title,
		Manufacturer: spec.Manufacturer,
		SourceLabel:  spec.SourceLabel,
		SourceURL:    item.URL,
		Summary:      item.Snippet,
		Tags:         []string{"新作", "メーカー情報"},
		MarketPrices: []MarketPriceSummary{},
	}

	if record.Summary == "" {
		record.Summary = item.Title
	}

	if series, ok := InferSeries(combined); ok {
		record.Series = &series
	}

	candidates := ExtractDateCandidates(combined, now)
	if releaseDate, ok := SelectReleaseDate(candidates, now); ok {
		formatted := releaseDate.Format("2006-01-02")
		record.ReleaseDate = &formatted
	}

	if price, ok := ExtractPriceYen(combined); ok {
		record.PriceYen = &price
	}

	return record
}

// ReleaseCollector はメーカー検索から新商品レコード一覧を収集する
type ReleaseCollector struct {
	search   SearchFunc
	liveness *LivenessChecker
	specs    []ManufacturerSpec
	cfg      SourceConfig
	pacing   time.Duration
}

// NewReleaseCollector は実ネットワークを使う収集器を作る
func NewReleaseCollector(cfg SourceConfig, specs []ManufacturerSpec) *ReleaseCollector {
	return &ReleaseCollector{
		search:   NewDuckDuckGoSearcher(cfg),
		liveness: NewLivenessChecker(cfg),
		specs:    specs,
		cfg:      cfg,
		pacing:   queryPacing,
	}
}

// Collect は全メーカーの候補を収集してレコード化する
//
// 戻り値はフィルタ通過順（＝発見順）。ソートと件数制限は呼び出し元が行う。
func (rc *ReleaseCollector) Collect(now time.Time) []ReleaseRecord {
	var releases []ReleaseRecord
	seenURLs := map[string]bool{}

	for i, spec := range rc.specs {
		if i > 0 && rc.pacing > 0 {
			time.Sleep(rc.pacing)
		}

		candidates, err := rc.search(spec.Query, resultsPerManufacturerQuery)
		if err != nil {
			warnf("search %s: %v", spec.Manufacturer, err)
			candidates = nil
		}

		// 検索とは独立したチャネルとしてRSSフィードの新着も候補に加える。
		// 両チャネルとも以降のフィルタは同一。
		if spec.FeedURL != "" {
			feedItems, err := collectFeedCandidates(spec, rc.cfg)
			if err != nil {
				warnf("feed %s: %v", spec.Manufacturer, err)
			} else {
				candidates = append(candidates, feedItems...)
			}
		}

		for _, item := range candidates {
			if !strings.Contains(item.URL, spec.Domain) {
				continue
			}
			if !LooksLikeProductURL(item.URL) {
				continue
			}
			if !rc.liveness.IsLive(item.URL) {
				continue
			}
			if seenURLs[item.URL] {
				continue
			}
			seenURLs[item.URL] = true

			releases = append(releases, BuildReleaseEntry(item, spec, now))
		}
	}

	return releases
}
