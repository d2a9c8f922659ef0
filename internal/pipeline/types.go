// =============================================================================
// types.go - データ構造定義
// =============================================================================
//
// このファイルはGacha Relayシステム全体で使用するデータ構造（型）を定義します。
//
// 【このファイルで定義している型】
//   - SearchResult:        検索エンジンから取得した1件の結果
//   - ReleaseRecord:       発見したカプセルトイ新商品1件
//   - MarketPriceSummary:  1つのフリマサイトにおける中古相場の集計
//   - SocialPost:          X（旧Twitter）の関連投稿1件
//
// 【初心者向けポイント】
//   - `json:"フィールド名"`はJSONに変換する際のキー名を指定するタグ
//   - 出力JSONのキー名は表示側（Webフロント）との互換契約なので変更しないこと
//   - 「無い」ことをnullで表すフィールドはポインタ型（*string, *int）で表現
//
// =============================================================================
package pipeline

// -----------------------------------------------------------------------------
// SearchResult - 検索エンジンの結果1件
// -----------------------------------------------------------------------------
//
// DuckDuckGo検索・メーカーRSSフィードの両チャネルがこの形に正規化される。
// パイプラインの入口となる交換用の型。
type SearchResult struct {
	Title   string `json:"title"`   // 結果タイトル
	URL     string `json:"url"`     // 結果URL
	Snippet string `json:"snippet"` // 結果スニペット（空の場合あり）
}

// -----------------------------------------------------------------------------
// ReleaseRecord - カプセルトイ新商品1件
// -----------------------------------------------------------------------------
//
// 検索結果から抽出・構築した新商品レコード。releases.json の要素。
//
// 【フィールドの説明】
//   ID:           SourceURL から決定論的に導出（同じURLなら毎回同じID）
//   Series:       既知シリーズ名（サンリオ等）、判定できなければ null
//   ReleaseDate:  発売日 "YYYY-MM-DD"、抽出できなければ null
//   PriceYen:     定価（円）、抽出できなければ null
//   ImageURL:     現状は常に null（出力互換のため維持）
//   Tags:         表示順を保持するタグ列。初期値は ["新作", "メーカー情報"]
//   MarketPrices: 中古相場の集計（フリマサイトごとに1件）
type ReleaseRecord struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Manufacturer string               `json:"manufacturer"`
	Series       *string              `json:"series"`
	ReleaseDate  *string              `json:"releaseDate"`
	PriceYen     *int                 `json:"priceYen"`
	SourceLabel  string               `json:"sourceLabel"`
	SourceURL    string               `json:"sourceUrl"`
	ImageURL     *string              `json:"imageUrl"`
	Summary      string               `json:"summary"`
	Tags         []string             `json:"tags"`
	MarketPrices []MarketPriceSummary `json:"marketPrices"`
}

// -----------------------------------------------------------------------------
// MarketPriceSummary - フリマサイト1つ分の中古相場
// -----------------------------------------------------------------------------
//
// 不変条件: MinPriceYen <= MedianPriceYen <= MaxPriceYen、SampleCount >= 1。
// サンプルが1件も取れなかったフリマサイトのエントリは生成されない。
type MarketPriceSummary struct {
	Marketplace    string `json:"marketplace"`    // フリマサイト名（例: "メルカリ"）
	SearchURL      string `json:"searchUrl"`      // 商品名から構築した検索URL
	SampleCount    int    `json:"sampleCount"`    // 価格サンプル数
	MinPriceYen    int    `json:"minPriceYen"`    // 最安値
	MedianPriceYen int    `json:"medianPriceYen"` // 中央値
	MaxPriceYen    int    `json:"maxPriceYen"`    // 最高値
	UpdatedAt      string `json:"updatedAt"`      // 集計時刻（RFC3339）
}

// -----------------------------------------------------------------------------
// SocialPost - X（旧Twitter）の関連投稿
// -----------------------------------------------------------------------------
//
// Yahoo!リアルタイム検索の結果ページから発見したステータスURLごとに1件。
// Content は oEmbed で後から1回だけ上書きされることがある（ベストエフォート）。
type SocialPost struct {
	ID             string `json:"id"`             // "x_<ステータスID>" または "x_<URLハッシュ>"
	Platform       string `json:"platform"`       // 固定値 "X"
	Username       string `json:"username"`       // "@ハンドル名" または "@unknown"
	Content        string `json:"content"`        // 投稿本文（初期値はキーワード由来の説明文）
	URL            string `json:"url"`            // ステータスURL（重複排除キー）
	PostedAt       string `json:"postedAt"`       // 投稿時刻（RFC3339、相対時刻から逆算）
	MatchedKeyword string `json:"matchedKeyword"` // マッチした検索キーワード
}
