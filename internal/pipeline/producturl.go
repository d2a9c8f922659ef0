// =============================================================================
// producturl.go - 商品ページURL判定
// =============================================================================
//
// 検索結果のURLが「商品ページらしいか」をパス/クエリのヒューリスティクスで
// 判定します。適合率優先のフィルタ: 取りこぼし（偽陰性）は許容するが、
// 商品以外のページが出力に混入する（偽陽性）のは避ける。
//
// =============================================================================
package pipeline

import (
	"net/url"
	"regexp"
	"strings"
)

// nonProductPathPrefixes は商品ページになり得ないサイト区画のパス接頭辞
//
// 収集対象メーカーのサイト構成に基づく固定の拒否リスト。
// "/wp-" はWordPressの管理系パス（/wp-admin, /wp-content等）をまとめて弾く。
var nonProductPathPrefixes = []string{
	"/about",
	"/contact",
	"/recruit",
	"/search",
	"/feed",
	"/newsed",
	"/books",
	"/vinyl",
	"/wp-",
}

// reQueryProductID はルートパスのカタログサイトが使うID系クエリパラメータ
// （?p=12345 のような商品指定）を検出する
var reQueryProductID = regexp.MustCompile(`(?:^|&)(?:p|item|product|id)=`)

// LooksLikeProductURL はURLが商品ページらしいかを判定する
//
// 【判定ルール】
//  1. スキームがhttp/httpsでなければ拒否
//  2. パス末尾のスラッシュを正規化（空パスは "/" とみなす）
//  3. 拒否リストの接頭辞で始まるパスは拒否
//  4. ルートパスはID系クエリパラメータがある場合のみ許可
//     （一部のカタログサイトはクエリだけで商品を指定するため）
//  5. それ以外のパスは許可
func LooksLikeProductURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	if !strings.HasPrefix(parsed.Scheme, "http") {
		return false
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	normalized := strings.TrimRight(path, "/")
	if normalized == "" {
		normalized = "/"
	}

	for _, prefix := range nonProductPathPrefixes {
		if strings.HasPrefix(normalized, strings.TrimRight(prefix, "/")) {
			return false
		}
	}

	if normalized == "/" {
		return reQueryProductID.MatchString(parsed.RawQuery)
	}

	return true
}
