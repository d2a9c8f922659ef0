// =============================================================================
// social.go - X（旧Twitter）関連投稿の収集
// =============================================================================
//
// Yahoo!リアルタイム検索の結果ページHTMLをステータスURLパターンで走査し、
// URL近傍の相対時刻表現（"3時間前"）から投稿時刻を逆算して SocialPost を
// 構築します。投稿本文はXのoEmbed APIでベストエフォートに補完します。
//
// =============================================================================
package pipeline

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ステータスURL: https://twitter.com/<handle>/status/<数字> または x.com
var reStatusURL = regexp.MustCompile(`https://(?:twitter\.com|x\.com)/[^/]+/status/\d+`)

// ステータスURLからハンドル名とステータスIDを取り出す
var reStatusParts = regexp.MustCompile(`(?:twitter\.com|x\.com)/([^/]+)/status/(\d+)`)

// 相対時刻: "N分前" "N時間前" "N日前"（空白混じりも許容）
var reRelativeTime = regexp.MustCompile(`(\d+)\s*(分|時間|日)前`)

// realtimeContextWindow はステータスURLの前後何バイトから相対時刻を探すか
//
// 経験的に決めた調整用の値。結果が密集したページではURLと時刻の対応を
// 取り違える可能性があり、厳密な保証はない。
const realtimeContextWindow = 220

// ParseRelativeTime は相対時刻表現を期間に変換する
//
// マッチしない場合は (0, false)。その場合、投稿時刻は「今」で近似される
// （エラーではなくベストエフォートの仕様）。
func ParseRelativeTime(text string) (time.Duration, bool) {
	m := reRelativeTime.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	value := atoi(m[1])
	switch m[2] {
	case "分":
		return time.Duration(value) * time.Minute, true
	case "時間":
		return time.Duration(value) * time.Hour, true
	case "日":
		return time.Duration(value) * 24 * time.Hour, true
	}
	return 0, false
}

// SocialCollector はキーワードごとのX投稿収集器
type SocialCollector struct {
	fetchPage func(rawURL string) (string, error)
	keywords  []string
	cfg       SourceConfig
	pacing    time.Duration
}

// NewSocialCollector は実ネットワークを使う収集器を作る
func NewSocialCollector(cfg SourceConfig, keywords []string) *SocialCollector {
	return &SocialCollector{
		fetchPage: func(rawURL string) (string, error) { return fetchHTML(rawURL, cfg) },
		keywords:  keywords,
		cfg:       cfg,
		pacing:    queryPacing,
	}
}

// Collect は全キーワードの投稿を収集しURLで重複排除して返す
//
// キーワード1件の取得失敗はそのキーワードだけスキップする。
// ソート・本文補完・件数制限は呼び出し元が行う。
func (sc *SocialCollector) Collect(now time.Time) []SocialPost {
	var posts []SocialPost
	seenURLs := map[string]bool{}

	for i, keyword := range sc.keywords {
		if i > 0 && sc.pacing > 0 {
			time.Sleep(sc.pacing)
		}

		items, err := sc.searchRealtime(keyword, now)
		if err != nil {
			warnf("realtime search %q: %v", keyword, err)
			continue
		}

		for _, item := range items {
			if seenURLs[item.URL] {
				continue
			}
			seenURLs[item.URL] = true
			posts = append(posts, item)
		}
	}

	return posts
}

// searchRealtime は1キーワード分のリアルタイム検索結果を取得・抽出する
func (sc *SocialCollector) searchRealtime(keyword string, now time.Time) ([]SocialPost, error) {
	searchURL := "https://search.yahoo.co.jp/realtime/search?p=" + url.QueryEscape(keyword) + "&ei=UTF-8"
	html, err := sc.fetchPage(searchURL)
	if err != nil {
		return nil, err
	}
	return ExtractStatusPosts(html, keyword, now), nil
}

// ExtractStatusPosts は結果ページHTMLからステータスURLごとに投稿を構築する
//
// 【抽出手順】
//  1. ステータスURLパターンで全文を走査（ページ内重複はURLで排除）
//  2. マッチ位置の前後 realtimeContextWindow バイトから相対時刻を探し、
//     見つかれば now から逆算、見つからなければ now をそのまま使う
//  3. ハンドル名はURLの /status/ 直前のパスセグメント（取れなければ @unknown）
//  4. IDは数字のステータスID、無ければURLのハッシュ
func ExtractStatusPosts(html, keyword string, now time.Time) []SocialPost {
	var posts []SocialPost
	seenURLs := map[string]bool{}

	for _, loc := range reStatusURL.FindAllStringIndex(html, -1) {
		statusURL := html[loc[0]:loc[1]]
		if seenURLs[statusURL] {
			continue
		}
		seenURLs[statusURL] = true

		start := loc[0] - realtimeContextWindow
		if start < 0 {
			start = 0
		}
		end := loc[1] + realtimeContextWindow
		if end > len(html) {
			end = len(html)
		}

		postedAt := now
		if delta, ok := ParseRelativeTime(html[start:end]); ok {
			postedAt = now.Add(-delta)
		}

		username := "@unknown"
		id := buildID("x", statusURL)
		if parts := reStatusParts.FindStringSubmatch(statusURL); parts != nil {
			username = "@" + parts[1]
			id = "x_" + parts[2]
		}

		posts = append(posts, SocialPost{
			ID:             id,
			Platform:       "X",
			Username:       username,
			Content:        keyword + " に関する投稿",
			URL:            statusURL,
			PostedAt:       postedAt.Format(time.RFC3339),
			MatchedKeyword: keyword,
		})

		if len(posts) >= maxStatusURLsPerKeyword {
			break
		}
	}

	return posts
}

// EnrichPosts は新しい順に並んだ投稿の本文をoEmbedで補完する
//
// 先頭からlimit件だけを対象とし、取得できた場合のみContentを上書きする。
// 失敗は無視（初期の説明文のまま残る）。
func (sc *SocialCollector) EnrichPosts(posts []SocialPost, limit int) {
	for i := range posts {
		if i >= limit {
			break
		}

		if content, ok := sc.fetchOEmbedText(posts[i].URL); ok {
			posts[i].Content = content
		}

		if sc.pacing > 0 {
			time.Sleep(lookupPacing)
		}
	}
}

// fetchOEmbedText はXのoEmbed APIから投稿本文テキストを取得する
func (sc *SocialCollector) fetchOEmbedText(statusURL string) (string, bool) {
	endpoint := "https://publish.twitter.com/oembed?omit_script=1&url=" + url.QueryEscape(statusURL)

	resp, err := httpGet(endpoint, sc.cfg)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", false
	}

	var payload struct {
		HTML string `json:"html"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false
	}

	text := CleanText(stripHTML(payload.HTML))
	if text == "" {
		return "", false
	}
	return text, true
}

// stripHTML はHTML断片からテキストのみを取り出す
func stripHTML(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}
