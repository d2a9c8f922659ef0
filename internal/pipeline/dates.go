// =============================================================================
// dates.go - 発売日の抽出と選定
// =============================================================================
//
// テキスト中の日付表現（"2026年3月15日", "2026.3.15", "3/15" 等）を候補として
// 抽出し、基準時刻 now に対して最も発売日らしい1つを選ぶ。
//
// 【設計方針】
//   - マッチングパターン（コンパイル済み正規表現）と選定ポリシーを分離し、
//     選定ロジック単体でテストできるようにする
//   - 暦として不正な日付（13月など）はその候補だけ捨てて続行する
//
// =============================================================================
package pipeline

import (
	"regexp"
	"strconv"
	"time"
)

// 年付き日付: "2026年3月15日" "2026.3.15" "2026-3-15"（日マーカーは省略可）
var reDateWithYear = regexp.MustCompile(`(20\d{2})\s*[./\-年]\s*(\d{1,2})\s*[./\-月]\s*(\d{1,2})\s*(?:日)?`)

// 年なし日付: "3月15日" "3/15" "3.15"
var reDateNoYear = regexp.MustCompile(`(\d{1,2})\s*[./\-月]\s*(\d{1,2})\s*(?:日)?`)

// ExtractDateCandidates はテキストから発売日候補を抽出する
//
// 【2段階の抽出】
//  1. 年付きパターン: マッチ範囲を記録しておく
//  2. 年なしパターン: 年付きマッチの範囲と重なるものはスキップ
//     （"2026年3月15日" の "3月15日" 部分を別候補として二重計上しない）
//
// 年なし候補の年は now の年と仮定し、結果が now より180日以上過去なら
// 翌年に繰り上げる（12月に見かけた "1/15" はほぼ確実に翌年1月を指す）。
func ExtractDateCandidates(text string, now time.Time) []time.Time {
	var candidates []time.Time
	var yearSpans [][2]int

	for _, m := range reDateWithYear.FindAllStringSubmatchIndex(text, -1) {
		year := atoi(text[m[2]:m[3]])
		month := atoi(text[m[4]:m[5]])
		day := atoi(text[m[6]:m[7]])

		candidate, ok := civilDate(year, month, day, now.Location())
		if !ok {
			continue
		}
		candidates = append(candidates, candidate)
		yearSpans = append(yearSpans, [2]int{m[0], m[1]})
	}

	for _, m := range reDateNoYear.FindAllStringSubmatchIndex(text, -1) {
		if overlapsAny(m[0], yearSpans) {
			continue
		}

		month := atoi(text[m[2]:m[3]])
		day := atoi(text[m[4]:m[5]])

		candidate, ok := civilDate(now.Year(), month, day, now.Location())
		if !ok {
			continue
		}

		if candidate.Before(now.AddDate(0, 0, -180)) {
			// 年境界の曖昧さ: 半年以上前に見える日付は翌年の予定とみなす
			candidate, ok = civilDate(now.Year()+1, month, day, now.Location())
			if !ok {
				continue
			}
		}

		candidates = append(candidates, candidate)
	}

	return candidates
}

// SelectReleaseDate は候補から最も発売日らしい1つを選ぶ
//
// 【選定ポリシー】
//   - 候補なし → (zero, false)
//   - [now-60日, now+240日] の窓内に候補があれば、nowとの日数差が最小の
//     ものを選ぶ（過去・未来を問わず「今に最も近い」日付。同じテキストに
//     含まれる記事公開日などの無関係な日付より発売日である可能性が高い）
//   - 窓内に1つもなければ、全候補のうち最も遅い日付（最も未来寄りの推測）
func SelectReleaseDate(candidates []time.Time, now time.Time) (time.Time, bool) {
	if len(candidates) == 0 {
		return time.Time{}, false
	}

	lower := now.AddDate(0, 0, -60)
	upper := now.AddDate(0, 0, 240)

	var best time.Time
	bestDist := -1
	for _, c := range candidates {
		if c.Before(lower) || c.After(upper) {
			continue
		}
		dist := absDays(c.Sub(now))
		if bestDist < 0 || dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	if bestDist >= 0 {
		return best, true
	}

	latest := candidates[0]
	for _, c := range candidates[1:] {
		if c.After(latest) {
			latest = c
		}
	}
	return latest, true
}

// civilDate は暦として正しい日付のみ time.Time を生成する
//
// time.Date は不正な月日を正規化してしまう（13月→翌年1月）ため、
// 往復で値が保たれるかを確認して不正な候補を弾く。
func civilDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// overlapsAny は位置posがいずれかの範囲 [start, end) に含まれるかを返す
func overlapsAny(pos int, spans [][2]int) bool {
	for _, span := range spans {
		if span[0] <= pos && pos < span[1] {
			return true
		}
	}
	return false
}

// absDays は期間を日数の絶対値に丸める
func absDays(d time.Duration) int {
	days := int(d.Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// atoi は数字列をintに変換する（正規表現でマッチ済みの入力専用）
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
