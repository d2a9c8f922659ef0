// =============================================================================
// output.go - ソート・フォールバック・JSON出力
// =============================================================================
//
// 収集結果の最終整列と、複数データディレクトリへの同一内容の書き出し
// （ファンアウト）、および「出力を空にしない」ためのフォールバック連鎖を
// 提供します。
//
// 【フォールバック連鎖】
//   今回の収集結果 → 前回実行の releases.json / x_posts.json → 固定シード
//   過去データかシードが存在する限り、出力ファイルが空になることはない。
//
// =============================================================================
package pipeline

import (
	"os"
	"path/filepath"
	"sort"
)

// 出力ファイル名（表示側との互換契約）
const (
	ReleasesFileName = "releases.json"
	PostsFileName    = "x_posts.json"
)

// DefaultOutputDirs はデータルート配下の出力先ディレクトリ一覧
//
// シャーディングではなくファンアウト: 全ディレクトリに同一内容を書く。
var DefaultOutputDirs = []string{
	"data",
	filepath.Join("assets", "data"),
	filepath.Join("web", "data"),
}

// SortReleases は表示順にレコードを整列する
//
// 発売日ありを先頭に、新しい日付順、同日はタイトル降順。
// 発売日なしのグループ内もタイトル降順で決定論的に並ぶ。
func SortReleases(releases []ReleaseRecord) {
	sort.SliceStable(releases, func(i, j int) bool {
		a, b := releases[i], releases[j]

		aHasDate := a.ReleaseDate != nil
		bHasDate := b.ReleaseDate != nil
		if aHasDate != bHasDate {
			return aHasDate
		}
		if aHasDate && *a.ReleaseDate != *b.ReleaseDate {
			return *a.ReleaseDate > *b.ReleaseDate
		}
		return a.Title > b.Title
	})
}

// SortPosts は投稿を新しい順に整列する
func SortPosts(posts []SocialPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PostedAt > posts[j].PostedAt
	})
}

// SavePayload はデータルート配下の全出力先に同一のJSONを書き出す
//
// ディレクトリは必要に応じて作成する。一部の書き込み失敗は警告のみで
// 続行する（残りの出力先には書かれる）。
func SavePayload(dataRoot, name string, payload any) {
	for _, dir := range DefaultOutputDirs {
		target := filepath.Join(dataRoot, dir)
		if err := os.MkdirAll(target, 0o755); err != nil {
			warnf("mkdir %s: %v", target, err)
			continue
		}
		if err := writeJSONFile(filepath.Join(target, name), payload); err != nil {
			warnf("write %s: %v", filepath.Join(target, name), err)
		}
	}
}

// ReadPreviousReleases は前回実行の出力を読み込む
//
// ファイルが無い・壊れている場合は空として扱う（フォールバック判定用）。
func ReadPreviousReleases(dataRoot string) []ReleaseRecord {
	var out []ReleaseRecord
	path := filepath.Join(dataRoot, "data", ReleasesFileName)
	if err := readJSONFile(path, &out); err != nil {
		return nil
	}
	return out
}

// ReadPreviousPosts は前回実行の投稿出力を読み込む
func ReadPreviousPosts(dataRoot string) []SocialPost {
	var out []SocialPost
	path := filepath.Join(dataRoot, "data", PostsFileName)
	if err := readJSONFile(path, &out); err != nil {
		return nil
	}
	return out
}

// SeedReleases は全取得失敗時に表示する初期データを返す
func SeedReleases() []ReleaseRecord {
	series := "サンリオ"
	releaseDate := "2026-03-15"
	priceYen := 400
	return []ReleaseRecord{
		{
			ID:           "rel_seed_bandai",
			Title:        "サンリオキャラクターズ カプセルラバーマスコット",
			Manufacturer: "BANDAI",
			Series:       &series,
			ReleaseDate:  &releaseDate,
			PriceYen:     &priceYen,
			SourceLabel:  "BANDAI ガシャポン",
			SourceURL:    "https://gashapon.jp/products/",
			Summary:      "初期データ: 取得失敗時に表示するサンプルです。",
			Tags:         []string{"新作", "サンプル", "中古相場"},
			MarketPrices: []MarketPriceSummary{
				{
					Marketplace:    "メルカリ",
					SearchURL:      "https://jp.mercari.com/search?keyword=%E3%82%B5%E3%83%B3%E3%83%AA%E3%82%AA%E3%82%AD%E3%83%A3%E3%83%A9%E3%82%AF%E3%82%BF%E3%83%BC%E3%82%BA%20%E3%82%AB%E3%83%97%E3%82%BB%E3%83%AB%E3%83%A9%E3%83%90%E3%83%BC%E3%83%9E%E3%82%B9%E3%82%B3%E3%83%83%E3%83%88",
					SampleCount:    12,
					MinPriceYen:    300,
					MedianPriceYen: 680,
					MaxPriceYen:    1800,
					UpdatedAt:      "2026-02-27T12:00:00+09:00",
				},
			},
		},
	}
}

// SeedPosts は全取得失敗時に表示する初期投稿を返す
func SeedPosts() []SocialPost {
	return []SocialPost{
		{
			ID:             "x_seed_1",
			Platform:       "X",
			Username:       "@gacha_news",
			Content:        "初期データ: 取得失敗時に表示するサンプル投稿です。",
			URL:            "https://x.com/gacha_news/status/1900000000000000001",
			PostedAt:       "2026-02-27T10:20:00Z",
			MatchedKeyword: "ガシャポン 新商品",
		},
	}
}

// FallbackReleases は空の収集結果を前回データまたはシードで置き換える
func FallbackReleases(releases, previous []ReleaseRecord) []ReleaseRecord {
	if len(releases) > 0 {
		return releases
	}
	if len(previous) > 0 {
		return previous
	}
	return SeedReleases()
}

// FallbackPosts は空の収集結果を前回データまたはシードで置き換える
func FallbackPosts(posts, previous []SocialPost) []SocialPost {
	if len(posts) > 0 {
		return posts
	}
	if len(previous) > 0 {
		return previous
	}
	return SeedPosts()
}
