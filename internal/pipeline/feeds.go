// =============================================================================
// feeds.go - メーカー新着情報フィード
// =============================================================================
//
// WordPressベースのメーカーサイトが公開する新着情報RSSを、検索と並ぶ
// もう1つの発見チャネルとして扱う。フィードの記事は SearchResult に正規化
// され、検索結果と同じフィルタ（ドメイン・商品URL・到達性）を通る。
//
// =============================================================================
package pipeline

import (
	"fmt"
	"regexp"

	"github.com/mmcdole/gofeed"
)

var reFeedHTMLTags = regexp.MustCompile(`<[^>]*>`)

// collectFeedCandidates はメーカーのRSSフィードから候補を取得する
//
// フィードを持たないメーカー（FeedURL空）では呼ばれない。
// 取得・パース失敗はエラーで返し、呼び出し元がそのフィードだけスキップする。
func collectFeedCandidates(spec ManufacturerSpec, cfg SourceConfig) ([]SearchResult, error) {
	fp := gofeed.NewParser()
	fp.Client = cfg.Client
	fp.UserAgent = cfg.UserAgent

	feed, err := fp.ParseURL(spec.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("feed parse failed: %w", err)
	}

	out := make([]SearchResult, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" || item.Title == "" {
			continue
		}
		out = append(out, SearchResult{
			Title:   CleanText(item.Title),
			URL:     item.Link,
			Snippet: CleanText(reFeedHTMLTags.ReplaceAllString(item.Description, " ")),
		})
		if len(out) >= resultsPerManufacturerQuery {
			break
		}
	}

	return out, nil
}
