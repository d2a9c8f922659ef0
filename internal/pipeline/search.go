// =============================================================================
// search.go - DuckDuckGo HTML検索クライアント
// =============================================================================
//
// このファイルは検索エンジン（DuckDuckGoのHTML版エンドポイント）から
// {title, url, snippet} の結果リストを取得する機能を提供します。
//
// 【なぜHTML版か】
//   DuckDuckGoの https://duckduckgo.com/html/ はJavaScript不要の静的HTMLを
//   返すため、goqueryでのスクレイピングに適している。APIキーも不要。
//
// 【リダイレクトURLの展開】
//   結果リンクは /l/?uddg=<エンコード済みURL> 形式のリダイレクトURLで
//   返ることがあるため、uddgパラメータを展開して実URLに正規化する。
//
// =============================================================================
package pipeline

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SearchFunc は検索コラボレータのシグネチャ
//
// テストではネットワークを使わないスタブに差し替えられる。
// 失敗（通信エラー・HTTPエラー）はerrorで返し、呼び出し元が
// その作業単位（クエリ1件）をスキップする。
type SearchFunc func(query string, maxResults int) ([]SearchResult, error)

// NewDuckDuckGoSearcher は実際にDuckDuckGoへ問い合わせるSearchFuncを返す
func NewDuckDuckGoSearcher(cfg SourceConfig) SearchFunc {
	return func(query string, maxResults int) ([]SearchResult, error) {
		return searchDuckDuckGo(query, maxResults, cfg)
	}
}

// searchDuckDuckGo はDuckDuckGoのHTML版で検索を実行する
func searchDuckDuckGo(query string, maxResults int, cfg SourceConfig) ([]SearchResult, error) {
	searchURL := "https://duckduckgo.com/html/?q=" + url.QueryEscape(query)

	resp, err := httpGet(searchURL, cfg)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return parseSearchResults(doc, maxResults), nil
}

// parseSearchResults は検索結果ページのDOMから結果リストを抽出する
//
// DuckDuckGoのHTML構造:
//
//	div.result
//	  a.result__a          ← タイトルとリンク
//	  .result__snippet     ← スニペット
func parseSearchResults(doc *goquery.Document, maxResults int) []SearchResult {
	results := make([]SearchResult, 0, maxResults)

	doc.Find("div.result").EachWithBreak(func(_ int, node *goquery.Selection) bool {
		link := node.Find("a.result__a").First()
		if link.Length() == 0 {
			return true
		}

		href, exists := link.Attr("href")
		if !exists || href == "" {
			return true
		}

		normalized := normalizeDDGURL(href)
		if !strings.HasPrefix(normalized, "http") {
			return true
		}

		snippet := ""
		if sn := node.Find(".result__snippet").First(); sn.Length() > 0 {
			snippet = CleanText(sn.Text())
		}

		results = append(results, SearchResult{
			Title:   CleanText(link.Text()),
			URL:     normalized,
			Snippet: snippet,
		})

		return len(results) < maxResults
	})

	return results
}

// normalizeDDGURL はDuckDuckGoのリダイレクトURLを実URLに展開する
//
// 対象は duckduckgo.com ドメインの /l/ パスのみ。それ以外のURLは
// そのまま返す（展開できない場合も元のURLを返す）。
func normalizeDDGURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	if strings.HasSuffix(parsed.Host, "duckduckgo.com") && parsed.Path == "/l/" {
		if uddg := parsed.Query().Get("uddg"); uddg != "" {
			return uddg
		}
	}

	return raw
}
