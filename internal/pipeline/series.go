// =============================================================================
// series.go - シリーズ（版権キャラクター）判定
// =============================================================================
package pipeline

import "strings"

// seriesKeywords は既知シリーズ名の固定リスト
//
// 複数のキーワードが同時に含まれる場合はリスト先頭のものを採用する
// （順序は決定論的なタイブレークとしてのみ意味を持つ）。
var seriesKeywords = []string{
	"サンリオ",
	"ちいかわ",
	"たまごっち",
	"ポケモン",
	"ディズニー",
	"ドラえもん",
	"おぱんちゅうさぎ",
	"ワンピース",
}

// InferSeries はテキストに含まれる既知シリーズ名を返す
func InferSeries(text string) (string, bool) {
	for _, word := range seriesKeywords {
		if strings.Contains(text, word) {
			return word, true
		}
	}
	return "", false
}
